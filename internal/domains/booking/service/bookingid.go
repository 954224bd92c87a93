package service

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	bookingIDNameLength   = 6
	bookingIDSuffixLength = 6
)

// GenerateBookingID builds the human-readable booking identifier from the
// client name and a millisecond timestamp: the first six alphanumerics of
// the name uppercased, plus the last six digits of the timestamp, as
// BK-<name>-<suffix>. Deterministic given both inputs; the timestamp is
// injected rather than read from an ambient clock. Two bookings with the
// same name in the same millisecond collide, an accepted weakness.
func GenerateBookingID(name string, nowMillis int64) string {
	var stripped strings.Builder

	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			stripped.WriteRune(r)
		}
	}

	namePart := stripped.String()
	if len(namePart) > bookingIDNameLength {
		namePart = namePart[:bookingIDNameLength]
	}
	namePart = strings.ToUpper(namePart)

	suffix := strconv.FormatInt(nowMillis, 10)
	if len(suffix) > bookingIDSuffixLength {
		suffix = suffix[len(suffix)-bookingIDSuffixLength:]
	}

	return fmt.Sprintf("BK-%s-%s", namePart, suffix)
}
