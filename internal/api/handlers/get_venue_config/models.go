package get_venue_config

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// VenueRulesResponse описательные правила площадки
type VenueRulesResponse struct {
	CancellationPolicy string   `json:"cancellationPolicy"`
	AdvanceBooking     string   `json:"advanceBooking"`
	Restrictions       []string `json:"restrictions"`
}

// VenueConfigResponse HTTP response model
type VenueConfigResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	AdminOnly          bool               `json:"adminOnly"`
	BusinessHours      string             `json:"businessHours"`
	MinBookingUnitMin  int                `json:"minBookingUnitMinutes"`
	MaxBookingDuration int                `json:"maxBookingDurationMinutes"`
	MaxSlots           int                `json:"maxSlots"`
	Companies          []string           `json:"companies"`
	Purposes           []string           `json:"purposes"`
	Facilities         []string           `json:"facilities"`
	Rules              VenueRulesResponse `json:"rules"`
}

// VenueListResponse список площадок
type VenueListResponse struct {
	Venues []*VenueConfigResponse `json:"venues"`
}

// FromDomainVenue конвертирует конфигурацию площадки в HTTP response
func FromDomainVenue(v *domain.VenueConfig) *VenueConfigResponse {
	return &VenueConfigResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Description:        v.Description,
		AdminOnly:          v.AdminOnly,
		BusinessHours:      v.BusinessHours,
		MinBookingUnitMin:  v.MinBookingUnitMin,
		MaxBookingDuration: v.MaxBookingDuration,
		MaxSlots:           v.MaxSlots,
		Companies:          v.Companies,
		Purposes:           v.Purposes,
		Facilities:         v.Facilities,
		Rules: VenueRulesResponse{
			CancellationPolicy: v.Rules.CancellationPolicy,
			AdvanceBooking:     v.Rules.AdvanceBooking,
			Restrictions:       v.Rules.Restrictions,
		},
	}
}
