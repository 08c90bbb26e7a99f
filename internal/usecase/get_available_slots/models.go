package get_available_slots

import "time"

// Request модель запроса доступности площадки на дату
type Request struct {
	VenueID string
	Date    time.Time // Дата (без времени)
}

// Slot слот суточного каталога с признаком занятости
type Slot struct {
	ID     string // Идентификатор вида "09:00-09:30"
	Booked bool   // Занят подтверждённым бронированием
}

// Response модель ответа с доступностью на дату
type Response struct {
	VenueID  string
	Date     time.Time
	Slots    []Slot   // Полный суточный каталог (48 слотов) с признаками занятости
	Occupied []string // Отсортированный список занятых слотов
	MaxSlots int      // Лимит слотов на одно бронирование для площадки
}
