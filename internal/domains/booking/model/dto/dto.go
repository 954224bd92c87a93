package dto

import (
	"glow/internal/domains/booking/model"
)

type CreateBookingRequest struct {
	Name     string   `json:"name"     validate:"required,min=2"`
	Email    string   `json:"email"    validate:"required,email"`
	Phone    string   `json:"phone"    validate:"required,min=5"`
	Date     string   `json:"date"     validate:"required,datetime=2006-01-02"`
	Time     string   `json:"time"     validate:"required,datetime=15:04"`
	Services []string `json:"services" validate:"required,min=1,dive,required"`
	Notes    string   `json:"notes"    validate:"omitempty"`
	Agreed   bool     `json:"agreed"   validate:"required,eq=true"`
}

func (c *CreateBookingRequest) ToModel(services []model.Service) model.Booking {
	return model.Booking{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Date:     c.Date,
		Time:     c.Time,
		Services: services,
		Notes:    c.Notes,
		Agreed:   c.Agreed,
	}
}

type AvailabilityRequest struct {
	Date     string `json:"date"     validate:"required,datetime=2006-01-02"`
	Duration int    `json:"duration" validate:"omitempty,gt=0"`
}

// DurationOrDefault returns the requested duration, falling back to the
// configured default when the field was omitted.
func (a *AvailabilityRequest) DurationOrDefault(defaultMinutes int) int {
	if a.Duration > 0 {
		return a.Duration
	}

	return defaultMinutes
}

type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailabilityResponse struct {
	Success        bool           `json:"success"`
	AvailableSlots []SlotResponse `json:"availableSlots"`
}

func (r *AvailabilityResponse) FromModels(slots []model.AvailabilitySlot) {
	r.Success = true

	r.AvailableSlots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		r.AvailableSlots[i] = SlotResponse{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}
}
