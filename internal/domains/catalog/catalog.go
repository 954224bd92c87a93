package catalog

import (
	"encoding/json"
	"fmt"

	"glow/config"
	"glow/internal/domains/booking/model"

	"github.com/rs/zerolog/log"
)

// defaultServices is the built-in catalog, used when no override is
// configured via BOOKING_SERVICE_CATALOG.
var defaultServices = []model.Service{
	{Name: "Massage", DurationMinutes: 60, Price: 80},
	{Name: "Gesichtsbehandlung", DurationMinutes: 45, Price: 65},
	{Name: "Maniküre", DurationMinutes: 30, Price: 40},
}

// Catalog resolves requested service names against the configured set of
// bookable services. It is built once at startup and never mutated.
type Catalog interface {
	Resolve(names []string) ([]model.Service, error)
	Services() []model.Service
}

type catalogImpl struct {
	services []model.Service
	byName   map[string]model.Service
}

func New(cfg *config.Config) Catalog {
	services := defaultServices

	if cfg.Booking.ServiceCatalog != "" {
		var configured []model.Service
		if err := json.Unmarshal([]byte(cfg.Booking.ServiceCatalog), &configured); err != nil {
			log.Fatal().Err(err).Msg("Failed to parse configured service catalog")
		}

		services = configured
	}

	byName := make(map[string]model.Service, len(services))
	for _, service := range services {
		byName[service.Name] = service
	}

	log.Info().Int("services", len(services)).Msg("Service catalog initialized")

	return &catalogImpl{
		services: services,
		byName:   byName,
	}
}

// Resolve maps each requested name to its catalog entry, preserving request
// order. The first unknown name fails the whole resolution.
func (c *catalogImpl) Resolve(names []string) ([]model.Service, error) {
	resolved := make([]model.Service, 0, len(names))

	for _, name := range names {
		service, ok := c.byName[name]
		if !ok {
			return nil, fmt.Errorf("service %q not found", name)
		}

		resolved = append(resolved, service)
	}

	return resolved, nil
}

// Services returns the configured catalog in its declared order.
func (c *catalogImpl) Services() []model.Service {
	return c.services
}
