package service

import (
	"fmt"
	"math"

	"glow/internal/domains/booking/model"
)

// GenerateSlots produces the candidate appointment windows for a date by
// stepping through the open-close window in fractional hours. It is pure:
// repeated calls with identical arguments yield an identical sequence. Every
// date currently shares the same opening hours, so the date argument only
// names the day the slots belong to.
//
// The loop continues while the slot START is before the close hour, so when
// the duration does not evenly divide the window the final slot ends past
// the nominal close (e.g. a 50-minute duration over 9-17 emits a last slot
// ending 17:20). Observable behavior, kept as is.
func GenerateSlots(date string, durationMinutes, openHour, closeHour int) []model.AvailabilitySlot {
	slots := []model.AvailabilitySlot{}

	step := float64(durationMinutes) / 60.0

	for hour := float64(openHour); hour < float64(closeHour); hour += step {
		slots = append(slots, model.AvailabilitySlot{
			StartTime: formatClock(hour),
			EndTime:   formatClock(hour + step),
		})
	}

	return slots
}

// formatClock converts a fractional hour to a 24h HH:MM string by
// floor/remainder, rounding the minute remainder to absorb float error.
func formatClock(hour float64) string {
	h := int(hour)

	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}

	return fmt.Sprintf("%02d:%02d", h, m)
}
