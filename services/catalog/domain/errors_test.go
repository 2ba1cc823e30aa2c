package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := map[error]string{
		ErrProductNotFound:      "product not found",
		ErrProductAlreadyExists: "product already exists",
		ErrInvalidProduct:       "invalid product",
		ErrInvalidCategory:      "invalid category",
	}
	for err, want := range tests {
		if err.Error() != want {
			t.Fatalf("unexpected message: %q, want %q", err.Error(), want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", ErrInvalidProduct, errors.New("price must be positive"))
	if !errors.Is(wrapped, ErrInvalidProduct) {
		t.Fatal("errors.Is must match wrapped ErrInvalidProduct")
	}
}
