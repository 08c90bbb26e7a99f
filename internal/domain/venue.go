package domain

// VenueRules descriptive business rules of a venue
// Потребляются только презентационным слоем
type VenueRules struct {
	CancellationPolicy string   `toml:"cancellation_policy"`
	AdvanceBooking     string   `toml:"advance_booking"`
	Restrictions       []string `toml:"restrictions"`
}

// VenueConfig represents the static configuration of a bookable venue
type VenueConfig struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`

	// AdminOnly true, если бронирование и просмотр требуют повышенного доступа
	AdminOnly bool `toml:"admin_only"`

	BusinessHours      string `toml:"business_hours"`
	MinBookingUnitMin  int    `toml:"min_booking_unit_minutes"`
	MaxBookingDuration int    `toml:"max_booking_duration_minutes"`

	// MaxSlots верхняя граница числа слотов в одном бронировании
	MaxSlots int `toml:"max_slots"`

	// Допустимые значения категорийных полей заявки
	Companies []string `toml:"companies"`
	Purposes  []string `toml:"purposes"`

	Facilities []string   `toml:"facilities"`
	Rules      VenueRules `toml:"rules"`
}

// AllowsCompany проверяет, что компания входит в допустимый список площадки
func (v *VenueConfig) AllowsCompany(company string) bool {
	return containsString(v.Companies, company)
}

// AllowsPurpose проверяет, что цель использования входит в допустимый список площадки
func (v *VenueConfig) AllowsPurpose(purpose string) bool {
	return containsString(v.Purposes, purpose)
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
