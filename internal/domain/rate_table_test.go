package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seasonalTable() *RateTable {
	return &RateTable{
		SubjectID: "car-1",
		Periods: []Period{
			{Name: "baja", StartMonth: time.November, StartDay: 1, EndMonth: time.March, EndDay: 31, ShortStayDailyRate: 40, LongStayDailyRate: 30},
			{Name: "media", StartMonth: time.April, StartDay: 1, EndMonth: time.June, EndDay: 30, ShortStayDailyRate: 60, LongStayDailyRate: 50},
			{Name: "alta", StartMonth: time.July, StartDay: 1, EndMonth: time.August, EndDay: 31, ShortStayDailyRate: 90, LongStayDailyRate: 70},
			{Name: "media-otoño", StartMonth: time.September, StartDay: 1, EndMonth: time.October, EndDay: 31, ShortStayDailyRate: 60, LongStayDailyRate: 50},
		},
		DailyDeductible: 15,
	}
}

func TestPeriod_Contains(t *testing.T) {
	summer := Period{Name: "alta", StartMonth: time.July, StartDay: 1, EndMonth: time.August, EndDay: 31}
	assert.True(t, summer.Contains(date(2024, time.July, 1)))
	assert.True(t, summer.Contains(date(2025, time.August, 31)))
	assert.False(t, summer.Contains(date(2024, time.June, 30)))
	assert.False(t, summer.Contains(date(2024, time.September, 1)))

	winter := Period{Name: "baja", StartMonth: time.November, StartDay: 1, EndMonth: time.March, EndDay: 31}
	assert.True(t, winter.Contains(date(2024, time.December, 31)))
	assert.True(t, winter.Contains(date(2025, time.January, 15)))
	assert.True(t, winter.Contains(date(2024, time.February, 29)))
	assert.False(t, winter.Contains(date(2024, time.April, 1)))
}

func TestRateTable_LookupPeriod(t *testing.T) {
	table := seasonalTable()

	p, ok := table.LookupPeriod(date(2024, time.July, 1))
	require.True(t, ok)
	assert.Equal(t, "alta", p.Name)

	p, ok = table.LookupPeriod(date(2024, time.January, 10))
	require.True(t, ok)
	assert.Equal(t, "baja", p.Name)

	_, ok = (&RateTable{}).LookupPeriod(date(2024, time.January, 10))
	assert.False(t, ok)
}

func TestRateTable_DailyRate(t *testing.T) {
	table := seasonalTable()
	alta, _ := table.LookupPeriod(date(2024, time.July, 1))

	assert.Equal(t, 3, table.Threshold())
	assert.Equal(t, 90.0, table.DailyRate(alta, 1))
	assert.Equal(t, 90.0, table.DailyRate(alta, 3))
	assert.Equal(t, 70.0, table.DailyRate(alta, 4))

	table.ShortStayThreshold = 7
	assert.Equal(t, 90.0, table.DailyRate(alta, 7))
	assert.Equal(t, 70.0, table.DailyRate(alta, 8))
}

func TestRateTable_Validate(t *testing.T) {
	t.Run("full coverage", func(t *testing.T) {
		require.NoError(t, seasonalTable().Validate())
	})

	t.Run("gap", func(t *testing.T) {
		table := seasonalTable()
		table.Periods = table.Periods[:3]
		assert.ErrorIs(t, table.Validate(), ErrRateTableGap)
	})

	t.Run("overlap", func(t *testing.T) {
		table := seasonalTable()
		table.Periods[1].EndMonth = time.July
		table.Periods[1].EndDay = 5
		assert.ErrorIs(t, table.Validate(), ErrRateTableOverlap)
	})

	t.Run("invalid day", func(t *testing.T) {
		table := seasonalTable()
		table.Periods[1].EndDay = 31 // June has 30 days
		assert.ErrorIs(t, table.Validate(), ErrInvalidPeriod)
	})

	t.Run("negative rate", func(t *testing.T) {
		table := seasonalTable()
		table.Periods[0].LongStayDailyRate = -1
		assert.ErrorIs(t, table.Validate(), ErrInvalidPeriod)
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, (&RateTable{}).Validate(), ErrRateTableGap)
	})
}
