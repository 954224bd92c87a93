package calendar

//go:generate go run go.uber.org/mock/mockgen -source=./calendar.go -destination=./mocks/calendar_mock.go -package=mocks

import (
	"context"
	"fmt"

	"glow/internal/domains/booking/model"
	"glow/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Calendar assigns calendar placeholders for bookings. CreateEvent cannot
// fail: the stub implementation only mints an identifier, and a real
// implementation is expected to queue the write rather than block booking.
type Calendar interface {
	CreateEvent(ctx context.Context, booking model.Booking) string
}

type stubCalendar struct{}

func New() Calendar {
	return &stubCalendar{}
}

func (c *stubCalendar) CreateEvent(_ context.Context, booking model.Booking) string {
	eventID := fmt.Sprintf("event_%d", timezone.Now().UnixMilli())

	log.Info().
		Str("eventId", eventID).
		Str("date", booking.Date).
		Str("time", booking.Time).
		Str("client", booking.Name).
		Msg("assigned calendar placeholder")

	return eventID
}
