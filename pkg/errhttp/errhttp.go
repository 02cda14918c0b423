// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	marketdomain "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, marketdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, marketdomain.ErrInvalidPrice):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, marketdomain.ErrAlreadySold):
		return http.StatusConflict // 409
	case errors.Is(err, marketdomain.ErrInsufficientPayment):
		return http.StatusPaymentRequired // 402
	case errors.Is(err, marketdomain.ErrCustodyTransferFailed):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
