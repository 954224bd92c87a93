package catalog_test

import (
	"testing"

	"glow/config"
	"glow/internal/domains/catalog"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Resolve(t *testing.T) {
	cat := catalog.New(&config.Config{})

	tests := []struct {
		name      string
		requested []string
		wantErr   bool
	}{
		{
			name:      "single known service",
			requested: []string{"Massage"},
			wantErr:   false,
		},
		{
			name:      "multiple known services keep request order",
			requested: []string{"Maniküre", "Massage"},
			wantErr:   false,
		},
		{
			name:      "unknown service fails the whole resolution",
			requested: []string{"Massage", "Hot Stone"},
			wantErr:   true,
		},
		{
			name:      "empty request resolves to empty list",
			requested: []string{},
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := cat.Resolve(tt.requested)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, resolved)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, resolved, len(tt.requested))

			for i, name := range tt.requested {
				assert.Equal(t, name, resolved[i].Name)
			}
		})
	}
}

func TestCatalog_ResolveDuplicateNames(t *testing.T) {
	cat := catalog.New(&config.Config{})

	resolved, err := cat.Resolve([]string{"Massage", "Massage"})

	assert.NoError(t, err)
	assert.Len(t, resolved, 2)
	assert.Equal(t, resolved[0], resolved[1])
}

func TestCatalog_ConfiguredOverride(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.ServiceCatalog = `[{"name":"Pediküre","duration":40,"price":45}]`

	cat := catalog.New(cfg)

	services := cat.Services()
	assert.Len(t, services, 1)
	assert.Equal(t, "Pediküre", services[0].Name)
	assert.Equal(t, 40, services[0].DurationMinutes)
	assert.InDelta(t, 45.0, services[0].Price, 0.001)

	_, err := cat.Resolve([]string{"Massage"})
	assert.Error(t, err, "default services are replaced by the configured catalog")
}

func TestCatalog_DefaultServices(t *testing.T) {
	cat := catalog.New(&config.Config{})

	services := cat.Services()

	assert.Len(t, services, 3)
	assert.Equal(t, "Massage", services[0].Name)
	assert.Equal(t, "Gesichtsbehandlung", services[1].Name)
	assert.Equal(t, "Maniküre", services[2].Name)
}
