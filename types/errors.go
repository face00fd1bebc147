package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when a mutation is attempted with no
	// signed-in owner. No gateway call is made.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a mutation targets an id absent from the
	// local mirror. The collection is left untouched.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTimeRange is returned for schedule items whose times are not
	// valid "HH:MM" strings or whose start is not strictly before their end.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidWeekday is returned when a schedule mutation names a day
	// outside 0 (Sunday) through 6 (Saturday).
	ErrInvalidWeekday = errors.New("invalid weekday")
)

// GatewayError wraps a transport or validation failure surfaced from the
// persistence gateway. Op names the failing gateway operation.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError wraps err, leaving nil untouched.
func NewGatewayError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &GatewayError{Op: op, Err: err}
}

// IsGatewayError reports whether any error in err's chain is a GatewayError.
func IsGatewayError(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge)
}
