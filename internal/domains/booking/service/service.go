package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/booking_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"glow/config"
	"glow/infras/calendar"
	"glow/infras/email"
	"glow/infras/otel"
	"glow/internal/domains/booking/model/dto"
	"glow/internal/domains/catalog"
	"glow/internal/domains/notification"
	"glow/shared/constant"
	"glow/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Book(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) dto.AvailabilityResponse
}

type serviceImpl struct {
	catalog    catalog.Catalog
	dispatcher notification.Dispatcher
	calendar   calendar.Calendar
	email      email.Email
	cfg        *config.Config
	otel       otel.Otel
}

func New(catalog catalog.Catalog, dispatcher notification.Dispatcher, calendar calendar.Calendar, email email.Email, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		catalog:    catalog,
		dispatcher: dispatcher,
		calendar:   calendar,
		email:      email,
		cfg:        cfg,
		otel:       otel,
	}
}

// Book runs the booking workflow. Only an unresolved service name aborts;
// every step after resolution is best-effort and the workflow reports
// success regardless of notification or email outcomes.
func (s *serviceImpl) Book(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	services, err := s.catalog.Resolve(req.Services)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve requested services")

		return res, fmt.Errorf("failed to resolve requested services: %w", err)
	}

	booking := req.ToModel(services)

	booking.EventID = s.calendar.CreateEvent(ctx, booking)
	scope.AddEvent("calendar placeholder assigned")

	s.bestEffort(ctx, "notify calendar event created", func(c context.Context) error {
		return s.notify(c, notification.EventCalendarEventCreated, map[string]any{
			"eventId":    booking.EventID,
			"date":       booking.Date,
			"time":       booking.Time,
			"clientName": booking.Name,
			"services":   booking.ServiceNames(),
		})
	})

	booking.BookingID = GenerateBookingID(booking.Name, timezone.Now().UnixMilli())

	s.bestEffort(ctx, "notify booking created", func(c context.Context) error {
		return s.notify(c, notification.EventBookingCreated, map[string]any{
			"name":      booking.Name,
			"email":     booking.Email,
			"phone":     booking.Phone,
			"date":      booking.Date,
			"time":      booking.Time,
			"services":  booking.Services,
			"notes":     booking.Notes,
			"eventId":   booking.EventID,
			"bookingId": booking.BookingID,
			"timestamp": timezone.Now().Format(constant.TimestampFormat),
			"ip":        clientIP(ctx),
		})
	})

	s.bestEffort(ctx, "send confirmation email", func(c context.Context) error {
		if err := s.email.SendConfirmation(c, booking); err != nil {
			return err
		}

		return s.notify(c, notification.EventEmailSent, map[string]any{
			"recipient": booking.Email,
			"subject":   email.ConfirmationSubject,
			"timestamp": timezone.Now().Format(constant.TimestampFormat),
			"status":    "sent",
		})
	})

	scope.AddEvent("booking created with id " + booking.BookingID)
	log.Info().Str("bookingId", booking.BookingID).Str("eventId", booking.EventID).Msg("booking created")

	return dto.BookingResponse{
		Success:   true,
		Message:   "Booking created successfully",
		BookingID: booking.BookingID,
	}, nil
}

// Availability is a pure computation decorated with a fire-and-forget
// notification: the dispatch goroutine is detached, its handle discarded,
// and no join point exists, so a slow or failing sink can never delay the
// response.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) dto.AvailabilityResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()

	duration := req.DurationOrDefault(s.cfg.Booking.DefaultDurationMinutes)

	go func() {
		c := context.WithoutCancel(ctx)

		if result := s.dispatcher.Dispatch(c, notification.EventAvailabilityCheck, map[string]any{
			"date":      req.Date,
			"duration":  duration,
			"timestamp": timezone.Now().Format(constant.TimestampFormat),
			"ip":        clientIP(ctx),
		}); !result.Success {
			log.Warn().Str("reason", result.Message).Msg("availability notification not delivered")
		}
	}()

	slots := GenerateSlots(req.Date, duration, s.cfg.Booking.OpenHour, s.cfg.Booking.CloseHour)

	scope.SetAttribute("slots", len(slots))

	var res dto.AvailabilityResponse
	res.FromModels(slots)

	return res
}

// bestEffort executes one non-essential step, folding its outcome into a
// uniform log record and always returning control to the workflow.
func (s *serviceImpl) bestEffort(ctx context.Context, step string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		log.Warn().Err(err).Str("step", step).Msg("best-effort step failed, continuing")

		return
	}

	log.Debug().Str("step", step).Msg("best-effort step completed")
}

// notify adapts the dispatcher's result channel to an error so best-effort
// steps can treat notifications and emails uniformly.
func (s *serviceImpl) notify(ctx context.Context, eventType notification.EventType, payload any) error {
	if result := s.dispatcher.Dispatch(ctx, eventType, payload); !result.Success {
		return errors.New(result.Message)
	}

	return nil
}

func clientIP(ctx context.Context) string {
	ip, _ := ctx.Value(constant.ContextKeyClientIP).(string)
	if ip == "" {
		return constant.ClientIPUnknown
	}

	return ip
}
