package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	timestampLayout     = "2006-01-02T15:04:05.000000"
	timestampLayoutNoFr = "2006-01-02T15:04:05"

	displayLayout = "2006-01-02 15:04:05"
)

// ParseTimestamp parses an ISO-8601-like timestamp with a trailing literal Z.
// A fractional-seconds component is truncated or zero-padded to exactly six
// digits before parsing, so nanosecond-precision inputs lose digits rather
// than round. Inputs without a fractional part are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	if !strings.HasSuffix(s, "Z") {
		return time.Time{}, fmt.Errorf("%w: timestamp %q lacks trailing Z", ErrBadTimestamp, s)
	}
	s = strings.TrimSuffix(s, "Z")

	main, frac, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		t, err := time.Parse(timestampLayoutNoFr, main)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrBadTimestamp, err)
		}
		return t, nil
	}

	// Truncate to microseconds; pad short fractions with zeros.
	if len(frac) > 6 {
		frac = frac[:6]
	}
	for len(frac) < 6 {
		frac += "0"
	}

	t, err := time.Parse(timestampLayout, main+"."+frac)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrBadTimestamp, err)
	}
	return t, nil
}

// FormatTimestamp renders a parsed timestamp back to display form:
// "2006-01-02 15:04:05" with a ".ffffff" suffix only when the
// microsecond part is non-zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format(displayLayout)
	}
	return fmt.Sprintf("%s.%06d", t.Format(displayLayout), t.Nanosecond()/1000)
}
