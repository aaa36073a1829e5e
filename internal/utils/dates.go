package utils

import (
	"fmt"
	"time"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
)

const dayLayout = "2006-01-02"

// ParseStrictDate parses a YYYY-MM-DD-prefixed string into a UTC instant at
// the start (00:00:00.000) or end (23:59:59.999) of that calendar day, so
// date-range filters resolve to the same absolute instants regardless of the
// server's timezone. Anything else fails with apperrors.ErrInvalidDate.
func ParseStrictDate(input string, endOfDay bool) (time.Time, error) {
	if len(input) < len(dayLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, input)
	}
	day, err := time.ParseInLocation(dayLayout, input[:len(dayLayout)], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, input)
	}
	if endOfDay {
		return day.Add(24*time.Hour - time.Millisecond), nil
	}
	return day, nil
}

// ValidateDateRange rejects a window whose start falls after its end. Nil
// bounds are open and always valid.
func ValidateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return fmt.Errorf("%w: start %s is after end %s",
			apperrors.ErrInvalidRange, start.Format(dayLayout), end.Format(dayLayout))
	}
	return nil
}
