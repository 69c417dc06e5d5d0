package pricing

import (
	"fmt"
	"math"
)

// ComputeItemPrice prices a travel or experience for a party.
// Children pay (1 - childDiscountRate) of the adult price. The result is
// rounded to whole currency units.
//
// Nonsensical inputs are clamped instead of rejected: negative counts
// become 0, the discount is bounded to [0, 1] and a negative price yields 0.
// Only a NaN or infinite price is reported as ErrMalformedPrice.
func ComputeItemPrice(pricePerPerson float64, travelerCount, childCount int, childDiscountRate float64) (float64, error) {
	if math.IsNaN(pricePerPerson) || math.IsInf(pricePerPerson, 0) {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPrice, pricePerPerson)
	}
	if pricePerPerson <= 0 {
		return 0, nil
	}

	travelers := float64(max(travelerCount, 0))
	children := float64(max(childCount, 0))
	discount := clampDiscount(childDiscountRate)

	total := pricePerPerson*travelers + pricePerPerson*(1-discount)*children
	return math.Round(total), nil
}

func clampDiscount(rate float64) float64 {
	switch {
	case math.IsNaN(rate) || rate < 0:
		return 0
	case rate > 1:
		return 1
	default:
		return rate
	}
}
