package venues

import "github.com/m04kA/SMC-VenueBookingService/internal/domain"

// Defaults возвращает встроенный набор площадок
// Используется, когда в конфигурации не указан внешний файл со справочником
func Defaults() []*domain.VenueConfig {
	return []*domain.VenueConfig{
		{
			ID:                 "studio-large",
			Name:               "Large Recording Studio",
			Description:        "Full-size recording room with control booth",
			AdminOnly:          true,
			BusinessHours:      "24H",
			MinBookingUnitMin:  30,
			MaxBookingDuration: 120,
			MaxSlots:           4,
			Companies:          []string{"SS Peaks", "Fujiwara Records", "Blaze Entertainment", "Other"},
			Purposes:           []string{"Release recording", "Client recording", "Demo recording", "Meeting", "Freelance work"},
			Facilities:         []string{"Professional recording equipment", "Mixing console", "Studio monitors", "MIDI keyboard"},
			Rules: domain.VenueRules{
				CancellationPolicy: "cancellable",
				AdvanceBooking:     "up to 90 days ahead",
				Restrictions:       []string{"No food or drinks", "Clean up equipment after use"},
			},
		},
		{
			ID:                 "studio-small",
			Name:               "Small Recording Studio",
			Description:        "Compact vocal booth for demos and overdubs",
			AdminOnly:          true,
			BusinessHours:      "24H",
			MinBookingUnitMin:  30,
			MaxBookingDuration: 120,
			MaxSlots:           4,
			Companies:          []string{"SS Peaks", "Fujiwara Records", "Blaze Entertainment", "Other"},
			Purposes:           []string{"Release recording", "Client recording", "Demo recording", "Meeting", "Freelance work"},
			Facilities:         []string{"Recording equipment", "Microphones", "Headphones", "Speakers"},
			Rules: domain.VenueRules{
				CancellationPolicy: "cancellable",
				AdvanceBooking:     "up to 90 days ahead",
				Restrictions:       []string{"No food or drinks", "Clean up equipment after use"},
			},
		},
		{
			ID:                 "practice-room",
			Name:               "Practice Room",
			Description:        "Open practice space for rehearsals and training",
			AdminOnly:          false,
			BusinessHours:      "24H",
			MinBookingUnitMin:  30,
			MaxBookingDuration: 120,
			MaxSlots:           4,
			Companies:          []string{"SS Peaks", "Blaze Entertainment", "Fujiwara Records", "Other"},
			Purposes: []string{
				"Artist training course",
				"Commercial performance rehearsal",
				"External teaching rental",
				"Group evaluation practice",
				"Artist tier",
				"Trainee tier",
				"S tier",
				"Other",
			},
			Facilities: []string{"Projector", "Speakers", "Yoga mats", "Cushions", "Dehumidifier"},
			Rules: domain.VenueRules{
				CancellationPolicy: "cancellable",
				AdvanceBooking:     "up to 90 days ahead",
				Restrictions: []string{
					"No food or drinks except for instructors",
					"Sweep and mop before using mats and cushions",
					"Manage dehumidifier water when entering and leaving",
					"Restore the room after use",
				},
			},
		},
	}
}
