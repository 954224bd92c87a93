package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glow/internal/domains/booking/service"
)

func TestGenerateBookingID(t *testing.T) {
	tests := []struct {
		name       string
		clientName string
		nowMillis  int64
		want       string
	}{
		{
			name:       "strips punctuation and uppercases",
			clientName: "O'Brien 3!",
			nowMillis:  1716200000123,
			want:       "BK-OBRIEN-000123",
		},
		{
			name:       "short name is kept whole",
			clientName: "Al",
			nowMillis:  1716200654321,
			want:       "BK-AL-654321",
		},
		{
			name:       "short timestamp is kept whole",
			clientName: "Maximilian",
			nowMillis:  4321,
			want:       "BK-MAXIMI-4321",
		},
		{
			name:       "name with no alphanumerics yields empty segment",
			clientName: "!!!",
			nowMillis:  1716200000999,
			want:       "BK--000999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.GenerateBookingID(tt.clientName, tt.nowMillis))
		})
	}
}

func TestGenerateBookingID_Deterministic(t *testing.T) {
	first := service.GenerateBookingID("Jane Doe", 1716200000123)
	second := service.GenerateBookingID("Jane Doe", 1716200000123)

	assert.Equal(t, first, second)
}
