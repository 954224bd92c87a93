package model

import "strings"

// Service is a single catalog entry: a bookable treatment with a fixed
// duration and price. The catalog is configuration-supplied and immutable
// for the lifetime of the process.
type Service struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

// Booking is a request whose service names have been resolved against the
// catalog. EventID is assigned once by the calendar collaborator and never
// reassigned; BookingID is assigned after the calendar placeholder exists.
// Bookings are request-scoped and never persisted.
type Booking struct {
	Name      string
	Email     string
	Phone     string
	Date      string
	Time      string
	Services  []Service
	Notes     string
	Agreed    bool
	EventID   string
	BookingID string
}

// ServiceNames returns the resolved service names joined for notification
// payloads, in request order.
func (b *Booking) ServiceNames() string {
	names := make([]string, len(b.Services))
	for i, service := range b.Services {
		names[i] = service.Name
	}

	return strings.Join(names, ", ")
}

// AvailabilitySlot is a single bookable window within one calendar day,
// with start and end as 24h HH:MM strings.
type AvailabilitySlot struct {
	StartTime string
	EndTime   string
}
