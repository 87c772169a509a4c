package domain

import (
	"errors"
	"fmt"
	"testing"
)

// Services wrap these sentinels with context; errors.Is must still match,
// and no two sentinels may alias each other.
func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrInvalidInput,
		ErrEmailTaken,
		ErrInvalidCredentials,
		ErrNoSession,
		ErrProductNotFound,
		ErrInvalidTransition,
		ErrForbidden,
	}

	for i, err := range sentinels {
		wrapped := fmt.Errorf("%w: extra context", err)
		if !errors.Is(wrapped, err) {
			t.Errorf("wrapped %v does not match its sentinel", err)
		}
		for j, other := range sentinels {
			if i != j && errors.Is(err, other) {
				t.Errorf("%v matches %v; sentinels must be distinct", err, other)
			}
		}
	}
}
