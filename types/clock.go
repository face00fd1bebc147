package types

import "fmt"

// ParseClock converts a fixed-width "HH:MM" 24h string into minutes since
// midnight.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%2d:%2d", &h, &m); err != nil || len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q: out of range", clock)
	}
	return h*60 + m, nil
}

// ValidateTimeRange checks that both clocks parse and that start is strictly
// before end. Overnight spans are not supported.
func ValidateTimeRange(start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if s >= e {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeRange, start, end)
	}
	return nil
}
