package email

//go:generate go run go.uber.org/mock/mockgen -source=./email.go -destination=./mocks/email_mock.go -package=mocks

import (
	"context"

	"glow/internal/domains/booking/model"

	"github.com/rs/zerolog/log"
)

const (
	ConfirmationSubject = "Booking Confirmation"
)

// Email sends booking confirmations. The stub implementation logs and
// reports success; the orchestrator treats failures as best-effort either
// way.
type Email interface {
	SendConfirmation(ctx context.Context, booking model.Booking) error
}

type stubEmail struct{}

func New() Email {
	return &stubEmail{}
}

func (e *stubEmail) SendConfirmation(_ context.Context, booking model.Booking) error {
	log.Info().
		Str("recipient", booking.Email).
		Str("subject", ConfirmationSubject).
		Str("bookingId", booking.BookingID).
		Msg("sending confirmation email")

	return nil
}
