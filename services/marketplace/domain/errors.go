package domain

import "errors"

// Sentinel errors for the marketplace domain. Use errors.Is() to check these.
var (
	// ErrInvalidPrice indicates a listing was attempted with a zero price.
	ErrInvalidPrice = errors.New("price has to be greater than zero")

	// ErrItemNotFound indicates the item id is outside the allocated range.
	ErrItemNotFound = errors.New("item not found")

	// ErrAlreadySold indicates the item has already been purchased.
	ErrAlreadySold = errors.New("item already sold")

	// ErrInsufficientPayment indicates the payment does not cover the quoted total.
	ErrInsufficientPayment = errors.New("payment below quoted total")

	// ErrCustodyTransferFailed indicates the asset registry refused a custody move.
	ErrCustodyTransferFailed = errors.New("custody transfer failed")
)
