package booking_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"glow/infras/otel/mocks"
	bookingMocks "glow/internal/domains/booking/mocks"
	"glow/internal/domains/booking/model/dto"
	"glow/internal/handlers/booking"
)

func setupRouter(t *testing.T, ctrl *gomock.Controller) (*bookingMocks.MockBooking, http.Handler) {
	t.Helper()

	mockService := bookingMocks.NewMockBooking(ctrl)

	handler := booking.New(mockService, mocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux)

	return mockService, mux
}

const validBookingBody = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+49 170 1234567",
	"date": "2025-06-15",
	"time": "10:00",
	"services": ["Massage"],
	"agreed": true
}`

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *bookingMocks.MockBooking)
		wantStatus int
		wantError  string
	}{
		{
			name: "successful booking",
			body: validBookingBody,
			setupMock: func(m *bookingMocks.MockBooking) {
				m.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{
						Success:   true,
						Message:   "Booking created successfully",
						BookingID: "BK-JANEDO-000123",
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "service failure maps to generic error",
			body: validBookingBody,
			setupMock: func(m *bookingMocks.MockBooking) {
				m.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, errors.New(`service "Hot Stone Massage" not found`))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "failed to create booking",
		},
		{
			name:       "malformed body is rejected",
			body:       `{"name": `,
			setupMock:  func(m *bookingMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing consent is rejected",
			body: `{
				"name": "Jane Doe",
				"email": "jane@example.com",
				"phone": "+49 170 1234567",
				"date": "2025-06-15",
				"time": "10:00",
				"services": ["Massage"]
			}`,
			setupMock:  func(m *bookingMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService, mux := setupRouter(t, ctrl)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			mux.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var res dto.BookingResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				assert.True(t, res.Success)
				assert.Equal(t, "BK-JANEDO-000123", res.BookingID)

				return
			}

			var errBody struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errBody))
			assert.False(t, errBody.Success)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errBody.Error)
			}
		})
	}
}

func TestHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *bookingMocks.MockBooking)
		wantStatus int
		wantSlots  int
	}{
		{
			name: "successful availability check",
			body: `{"date": "2025-06-15"}`,
			setupMock: func(m *bookingMocks.MockBooking) {
				m.EXPECT().
					Availability(gomock.Any(), dto.AvailabilityRequest{Date: "2025-06-15"}).
					Return(dto.AvailabilityResponse{
						Success: true,
						AvailableSlots: []dto.SlotResponse{
							{StartTime: "09:00", EndTime: "10:00"},
							{StartTime: "10:00", EndTime: "11:00"},
						},
					})
			},
			wantStatus: http.StatusOK,
			wantSlots:  2,
		},
		{
			name:       "missing date is rejected",
			body:       `{"duration": 50}`,
			setupMock:  func(m *bookingMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative duration is rejected",
			body:       `{"date": "2025-06-15", "duration": -30}`,
			setupMock:  func(m *bookingMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService, mux := setupRouter(t, ctrl)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPost, "/api/availability", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			mux.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var res dto.AvailabilityResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				assert.True(t, res.Success)
				assert.Len(t, res.AvailableSlots, tt.wantSlots)
			}
		})
	}
}
