package pricing

import (
	"math"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

const day = 24 * time.Hour

// RentalQuote is the breakdown of a day-rate rental price
type RentalQuote struct {
	Period          domain.Period
	TotalDays       int
	DailyRate       float64
	TotalPrice      float64
	DailyDeductible float64
	LongStay        bool
}

// ComputeRentalPrice prices a rental between start and end.
//
// The period in effect on the start date governs the whole stay.
// The second return value is false when the price cannot be computed yet:
// missing dates, end not after start, or no period for the start date.
// The deductible is informational and never added to TotalPrice.
func ComputeRentalPrice(table *domain.RateTable, start, end time.Time) (RentalQuote, bool) {
	if table == nil || start.IsZero() || end.IsZero() || !start.Before(end) {
		return RentalQuote{}, false
	}

	totalDays := int(math.Ceil(float64(end.Sub(start)) / float64(day)))
	if totalDays < 1 {
		totalDays = 1
	}

	period, ok := table.LookupPeriod(start)
	if !ok {
		return RentalQuote{}, false
	}

	dailyRate := table.DailyRate(period, totalDays)

	return RentalQuote{
		Period:          period,
		TotalDays:       totalDays,
		DailyRate:       dailyRate,
		TotalPrice:      dailyRate * float64(totalDays),
		DailyDeductible: table.DailyDeductible,
		LongStay:        totalDays > table.Threshold(),
	}, true
}
