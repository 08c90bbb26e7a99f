package venues

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Registry статический справочник конфигураций площадок
// Наполняется один раз при старте сервиса и далее не изменяется
type Registry struct {
	venues map[string]*domain.VenueConfig
	order  []string
}

// NewRegistry создает справочник из переданного набора конфигураций
func NewRegistry(configs []*domain.VenueConfig) (*Registry, error) {
	registry := &Registry{
		venues: make(map[string]*domain.VenueConfig, len(configs)),
		order:  make([]string, 0, len(configs)),
	}

	for _, cfg := range configs {
		if cfg.ID == "" {
			return nil, fmt.Errorf("%w: venue id is empty", ErrInvalidVenueConfig)
		}
		if cfg.MaxSlots < 1 {
			return nil, fmt.Errorf("%w: venue %q has maxSlots < 1", ErrInvalidVenueConfig, cfg.ID)
		}
		if _, exists := registry.venues[cfg.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate venue id %q", ErrInvalidVenueConfig, cfg.ID)
		}
		registry.venues[cfg.ID] = cfg
		registry.order = append(registry.order, cfg.ID)
	}

	return registry, nil
}

// LoadFromFile загружает справочник площадок из TOML файла
func LoadFromFile(path string) (*Registry, error) {
	var file venuesFile

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidVenueConfig, path, err)
	}

	return NewRegistry(file.Venues)
}

// venuesFile структура TOML файла со списком площадок
type venuesFile struct {
	Venues []*domain.VenueConfig `toml:"venues"`
}

// Get возвращает конфигурацию площадки по идентификатору
// Отсутствие площадки - ошибка конфигурации: идентификатор обязан быть
// провалидирован вызывающей стороной
func (r *Registry) Get(venueID string) (*domain.VenueConfig, error) {
	venue, ok := r.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVenueNotFound, venueID)
	}
	return venue, nil
}

// All возвращает все площадки в порядке объявления
func (r *Registry) All() []*domain.VenueConfig {
	result := make([]*domain.VenueConfig, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.venues[id])
	}
	return result
}
