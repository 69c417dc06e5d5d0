package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func yearTable() *domain.RateTable {
	return &domain.RateTable{
		SubjectID: "car-1",
		Periods: []domain.Period{
			{Name: "baja", StartMonth: time.September, StartDay: 1, EndMonth: time.June, EndDay: 30, ShortStayDailyRate: 50, LongStayDailyRate: 40},
			{Name: "alta", StartMonth: time.July, StartDay: 1, EndMonth: time.August, EndDay: 31, ShortStayDailyRate: 90, LongStayDailyRate: 70},
		},
		DailyDeductible: 15,
	}
}

func TestComputeRentalPrice_HighSeason(t *testing.T) {
	quote, ok := ComputeRentalPrice(yearTable(), date(2024, time.July, 1), date(2024, time.July, 5))

	require.True(t, ok)
	assert.Equal(t, "alta", quote.Period.Name)
	assert.Equal(t, 4, quote.TotalDays)
	assert.Equal(t, 70.0, quote.DailyRate)
	assert.Equal(t, 280.0, quote.TotalPrice)
	assert.Equal(t, 15.0, quote.DailyDeductible)
	assert.True(t, quote.LongStay)
}

func TestComputeRentalPrice_StartDateGovernsWholeStay(t *testing.T) {
	// 25 June to 5 July crosses into "alta" but is priced with "baja"
	quote, ok := ComputeRentalPrice(yearTable(), date(2024, time.June, 25), date(2024, time.July, 5))

	require.True(t, ok)
	assert.Equal(t, "baja", quote.Period.Name)
	assert.Equal(t, 10, quote.TotalDays)
	assert.Equal(t, 40.0, quote.DailyRate)
	assert.Equal(t, 400.0, quote.TotalPrice)
}

func TestComputeRentalPrice_Threshold(t *testing.T) {
	table := yearTable()

	short, ok := ComputeRentalPrice(table, date(2024, time.July, 10), date(2024, time.July, 13))
	require.True(t, ok)
	assert.Equal(t, 3, short.TotalDays)
	assert.Equal(t, 90.0, short.DailyRate)
	assert.Equal(t, 270.0, short.TotalPrice)
	assert.False(t, short.LongStay)

	long, ok := ComputeRentalPrice(table, date(2024, time.July, 10), date(2024, time.July, 14))
	require.True(t, ok)
	assert.Equal(t, 4, long.TotalDays)
	assert.Equal(t, 70.0, long.DailyRate)
}

func TestComputeRentalPrice_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 2, 12, 0, 0, 0, time.UTC)

	quote, ok := ComputeRentalPrice(yearTable(), start, end)

	require.True(t, ok)
	assert.Equal(t, 2, quote.TotalDays)
	assert.Equal(t, 180.0, quote.TotalPrice)
}

func TestComputeRentalPrice_NotComputable(t *testing.T) {
	table := yearTable()

	tests := []struct {
		name  string
		table *domain.RateTable
		start time.Time
		end   time.Time
	}{
		{"missing start", table, time.Time{}, date(2024, time.July, 5)},
		{"missing end", table, date(2024, time.July, 1), time.Time{}},
		{"same day", table, date(2024, time.July, 1), date(2024, time.July, 1)},
		{"end before start", table, date(2024, time.July, 5), date(2024, time.July, 1)},
		{"no table", nil, date(2024, time.July, 1), date(2024, time.July, 5)},
		{"no period", &domain.RateTable{}, date(2024, time.July, 1), date(2024, time.July, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, ok := ComputeRentalPrice(tt.table, tt.start, tt.end)
			assert.False(t, ok)
			assert.Zero(t, quote.TotalPrice)
		})
	}
}
