package domain

import (
	"sort"
	"time"
)

// CheckConflict возвращает список запрошенных слотов, которые уже заняты
// подтверждёнными бронированиями на ту же площадку и дату
//
// Алгоритм: фильтруем бронирования по status=confirmed, venueID и дате,
// собираем занятые слоты в множество и пересекаем с запрошенными.
// Отменённые бронирования слоты не держат.
// Пустой результат означает отсутствие конфликтов.
func CheckConflict(existing []*Booking, venueID string, date time.Time, requestedSlots []string) []string {
	occupied := OccupiedSlotSet(existing, venueID, date)

	conflicts := make([]string, 0)
	for _, slot := range requestedSlots {
		if _, taken := occupied[slot]; taken {
			conflicts = append(conflicts, slot)
		}
	}

	sort.Strings(conflicts)
	return conflicts
}

// OccupiedSlotSet собирает множество слотов, занятых подтверждёнными
// бронированиями на указанную площадку и дату
func OccupiedSlotSet(existing []*Booking, venueID string, date time.Time) map[string]struct{} {
	occupied := make(map[string]struct{})

	for _, booking := range existing {
		if !booking.IsConfirmed() {
			continue
		}
		if booking.VenueID != venueID || !SameDate(booking.Date, date) {
			continue
		}
		for _, slot := range booking.TimeSlots {
			occupied[slot] = struct{}{}
		}
	}

	return occupied
}

// OccupiedSlots возвращает отсортированный список занятых слотов
func OccupiedSlots(existing []*Booking, venueID string, date time.Time) []string {
	set := OccupiedSlotSet(existing, venueID, date)

	slots := make([]string, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}

	sort.Strings(slots)
	return slots
}
