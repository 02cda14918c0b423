package models

import "fmt"

// Amount is a monetary value in the marketplace's base unit (indivisible,
// like wei or cents). All fee arithmetic is integer arithmetic so repeated
// quotes never drift.
type Amount uint64

// Price is an Amount that has been validated as a legal ask for a listing.
// Construct via NewPrice; the zero value is never a valid Price.
type Price Amount

// NewPrice validates that a seller's ask is strictly positive.
func NewPrice(a Amount) (Price, error) {
	if a == 0 {
		return 0, fmt.Errorf("price must be greater than zero")
	}
	return Price(a), nil
}

// Amount returns the price as a plain Amount.
func (p Price) Amount() Amount {
	return Amount(p)
}

// Fee computes the flat marketplace fee for this price at the given integer
// percentage, rounded down.
func (p Price) Fee(feePercent uint64) Amount {
	return Amount(p) * Amount(feePercent) / 100
}

// Total returns the buyer-facing total: price plus fee.
func (p Price) Total(feePercent uint64) Amount {
	return Amount(p) + p.Fee(feePercent)
}
