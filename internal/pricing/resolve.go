package pricing

import (
	"math"
	"strconv"
)

// DisplayPrice is a per-person price derived from a sealed total.
// It is for rendering only and cannot be passed to ResolveFinalTotalPrice.
type DisplayPrice struct {
	amount float64
}

// Amount returns the displayed value
func (p DisplayPrice) Amount() float64 {
	return p.amount
}

func (p DisplayPrice) String() string {
	return strconv.FormatFloat(p.amount, 'f', 2, 64)
}

// DerivePricePerPersonForDisplay splits a total across travelers.
// Returns 0 when there are no travelers.
func DerivePricePerPersonForDisplay(total float64, travelers int) DisplayPrice {
	if travelers <= 0 || !finitePositive(total) {
		return DisplayPrice{}
	}
	return DisplayPrice{amount: total / float64(travelers)}
}

// CatalogPrice is the authoritative per-person price from the catalog
type CatalogPrice float64

// Positive returns true if the price can be used for pricing
func (p CatalogPrice) Positive() bool {
	return finitePositive(float64(p))
}

// ProvisionalTotal is the live total of a booking without a sealed price
func ProvisionalTotal(price CatalogPrice, travelers int) float64 {
	if !price.Positive() || travelers <= 0 {
		return 0
	}
	return float64(price) * float64(travelers)
}

// ResolveInput carries everything the final price resolution looks at
type ResolveInput struct {
	// HasConfirmedTotal must be computed when the booking is loaded, before any pricing
	HasConfirmedTotal bool
	ExistingTotal     float64
	PricePerPerson    CatalogPrice
	TravelerCount     int
}

// ResolveFinalTotalPrice picks the total to persist on submission.
// Rules in priority order:
//  1. a sealed total is kept verbatim
//  2. catalog price per person times travelers
//  3. whatever total is already on the record
func ResolveFinalTotalPrice(in ResolveInput) (float64, error) {
	var total float64

	switch {
	case in.HasConfirmedTotal:
		total = in.ExistingTotal
	case in.PricePerPerson.Positive():
		total = float64(in.PricePerPerson) * float64(in.TravelerCount)
	default:
		total = in.ExistingTotal
	}

	if !finitePositive(total) {
		return 0, ErrPriceUnavailable
	}
	return total, nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
