package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidRequest   = errors.New("invalid request")
)

// Unavailable wraps a driver error so callers can match ErrStoreUnavailable
// and still reach the driver error with errors.As.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
