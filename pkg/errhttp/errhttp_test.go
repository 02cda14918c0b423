package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	marketdomain "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"item not found", marketdomain.ErrItemNotFound, http.StatusNotFound},
		{"invalid price", marketdomain.ErrInvalidPrice, http.StatusUnprocessableEntity},
		{"already sold", marketdomain.ErrAlreadySold, http.StatusConflict},
		{"insufficient payment", marketdomain.ErrInsufficientPayment, http.StatusPaymentRequired},
		{"custody transfer failed", marketdomain.ErrCustodyTransferFailed, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, c.err)
			if rec.Code != c.status {
				t.Fatalf("expected status %d, got %d", c.status, rec.Code)
			}
		})
	}
}

func TestWriteError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("item 3: %w", marketdomain.ErrAlreadySold))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped ErrAlreadySold, got %d", rec.Code)
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, marketdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not valid JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error field in response body")
	}
}
