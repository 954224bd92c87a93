package booking

import (
	"net/http"

	"glow/infras/otel"
	"glow/internal/domains/booking/model/dto"
	"glow/internal/domains/booking/service"
	"glow/shared/constant"
	"glow/shared/failure"
	"glow/shared/validator"
	"glow/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Post("/book", handler.CreateBooking)
		routerGroup.Post("/availability", handler.CheckAvailability)
	})
}

// CreateBooking handles the creation of a new appointment booking.
// @Summary Create a new booking
// @Description Book an appointment for one or more salon services.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/book [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		// Clients get the generic failure, the cause stays in the logs.
		response.WithError(writer, failure.BookingFailed)

		return
	}

	scope.AddEvent("Booking created successfully with id " + res.BookingID)

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckAvailability lists the bookable time slots for a date.
// @Summary Check slot availability
// @Description List the appointment slots available on a date for a given duration.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityRequest true "Availability Request"
// @Success 200 {object} dto.AvailabilityResponse "Available slots"
// @Failure 400 {object} response.Error
// @Router /api/availability [post]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res := handler.service.Availability(ctx, req)

	scope.AddEvent("Availability computed")

	response.WithJSON(writer, http.StatusOK, res)
}
