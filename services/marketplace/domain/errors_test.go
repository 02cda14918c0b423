package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	for _, err := range []error{
		ErrInvalidPrice,
		ErrItemNotFound,
		ErrAlreadySold,
		ErrInsufficientPayment,
		ErrCustodyTransferFailed,
	} {
		if err == nil {
			t.Fatal("sentinel error must not be nil")
		}
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidPrice,
		ErrItemNotFound,
		ErrAlreadySold,
		ErrInsufficientPayment,
		ErrCustodyTransferFailed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinels %d and %d must not match each other", i, j)
			}
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("item 3: %w", ErrAlreadySold)
	if !errors.Is(wrapped, ErrAlreadySold) {
		t.Fatal("errors.Is must match wrapped ErrAlreadySold")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrCustodyTransferFailed, errors.New("not the owner"))
	if !errors.Is(wrapped2, ErrCustodyTransferFailed) {
		t.Fatal("errors.Is must match double-wrapped ErrCustodyTransferFailed")
	}
}
