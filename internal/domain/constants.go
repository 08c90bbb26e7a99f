package domain

// Slot structure constants
const (
	SlotDurationMinutes = 30
	SlotsPerDay         = 48 // 24 часа по два слота в час
)

// Business validation constants
const (
	MinPhoneLength      = 8
	MaxNotesLength      = 500
	MaxCancelReasonLen  = 500
	ConfirmationCodeLen = 12
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
