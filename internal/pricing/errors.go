package pricing

import "errors"

var (
	// ErrMalformedPrice is returned when a price is NaN or infinite
	ErrMalformedPrice = errors.New("pricing: malformed price")

	// ErrPriceUnavailable is returned when no positive total can be resolved
	ErrPriceUnavailable = errors.New("pricing: price unavailable")
)
