package domain

import "fmt"

// GenerateDaySlots генерирует полный список слотов на день
// Слоты идут с шагом 30 минут и покрывают сутки целиком: "00:00-00:30" ... "23:30-24:00"
// Функция чистая: результат не зависит ни от площадки, ни от даты
func GenerateDaySlots() []string {
	slots := make([]string, 0, SlotsPerDay)

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += SlotDurationMinutes {
			endHour := hour
			endMinute := minute + SlotDurationMinutes
			if endMinute == 60 {
				endHour = hour + 1
				endMinute = 0
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d-%02d:%02d", hour, minute, endHour, endMinute))
		}
	}

	return slots
}

// daySlotSet множество валидных идентификаторов слотов
// Вычисляется один раз при инициализации пакета
var daySlotSet = func() map[string]struct{} {
	set := make(map[string]struct{}, SlotsPerDay)
	for _, slot := range GenerateDaySlots() {
		set[slot] = struct{}{}
	}
	return set
}()

// IsValidSlot проверяет, что идентификатор слота входит в суточный каталог
func IsValidSlot(slot string) bool {
	_, ok := daySlotSet[slot]
	return ok
}
