package quote_rental

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

// Request модель запроса на расчет аренды
type Request struct {
	SubjectID string
	Start     time.Time
	End       time.Time
}

// Response расчет аренды.
// Computable=false означает, что даты еще не позволяют посчитать цену: Quote в этом случае nil.
type Response struct {
	SubjectID  string
	Start      time.Time
	End        time.Time
	Computable bool
	Quote      *pricing.RentalQuote
}
