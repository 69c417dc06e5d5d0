package domain

import (
	"fmt"
	"math"
	"time"
)

// Period is a named seasonal range with two daily rate tiers.
// Boundaries are inclusive calendar days. A period whose end precedes
// its start wraps over the new year (e.g. Nov 1 - Feb 28).
type Period struct {
	Name               string
	StartMonth         time.Month
	StartDay           int
	EndMonth           time.Month
	EndDay             int
	ShortStayDailyRate float64
	LongStayDailyRate  float64
}

// Contains returns true if the calendar day of date falls inside the period
func (p Period) Contains(date time.Time) bool {
	day := monthDay(date.Month(), date.Day())
	start := monthDay(p.StartMonth, p.StartDay)
	end := monthDay(p.EndMonth, p.EndDay)

	if start <= end {
		return day >= start && day <= end
	}
	return day >= start || day <= end
}

// Validate checks boundaries and rates of a single period
func (p Period) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPeriod)
	}
	if !validMonthDay(p.StartMonth, p.StartDay) {
		return fmt.Errorf("%w: %s has invalid start %d-%d", ErrInvalidPeriod, p.Name, p.StartMonth, p.StartDay)
	}
	if !validMonthDay(p.EndMonth, p.EndDay) {
		return fmt.Errorf("%w: %s has invalid end %d-%d", ErrInvalidPeriod, p.Name, p.EndMonth, p.EndDay)
	}
	if !validRate(p.ShortStayDailyRate) || !validRate(p.LongStayDailyRate) {
		return fmt.Errorf("%w: %s has a negative or non-numeric rate", ErrInvalidPeriod, p.Name)
	}
	return nil
}

// RateTable is the seasonal pricing of one rentable item
type RateTable struct {
	SubjectID          string
	Periods            []Period
	DailyDeductible    float64
	ShortStayThreshold int
	UpdatedAt          time.Time
}

// Threshold returns the short-stay day limit, falling back to the default
func (rt *RateTable) Threshold() int {
	if rt.ShortStayThreshold <= 0 {
		return DefaultShortStayThreshold
	}
	return rt.ShortStayThreshold
}

// LookupPeriod returns the period in effect on the given date
func (rt *RateTable) LookupPeriod(date time.Time) (Period, bool) {
	for _, p := range rt.Periods {
		if p.Contains(date) {
			return p, true
		}
	}
	return Period{}, false
}

// DailyRate selects the rate tier for a stay of the given length
func (rt *RateTable) DailyRate(p Period, stayLengthDays int) float64 {
	if stayLengthDays <= rt.Threshold() {
		return p.ShortStayDailyRate
	}
	return p.LongStayDailyRate
}

// Validate checks that periods are well formed, do not overlap
// and together cover every day of a leap year
func (rt *RateTable) Validate() error {
	if len(rt.Periods) == 0 {
		return fmt.Errorf("%w: no periods defined", ErrRateTableGap)
	}
	if !validRate(rt.DailyDeductible) {
		return fmt.Errorf("%w: daily deductible must be a non-negative number", ErrInvalidPeriod)
	}

	for _, p := range rt.Periods {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	day := time.Date(coverageYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == coverageYear {
		matches := 0
		for _, p := range rt.Periods {
			if p.Contains(day) {
				matches++
			}
		}

		switch {
		case matches == 0:
			return fmt.Errorf("%w: %s is not covered", ErrRateTableGap, day.Format("01-02"))
		case matches > 1:
			return fmt.Errorf("%w: %s is covered %d times", ErrRateTableOverlap, day.Format("01-02"), matches)
		}

		day = day.AddDate(0, 0, 1)
	}

	return nil
}

// coverageYear is a leap year so that Feb 29 is checked too
const coverageYear = 2024

func monthDay(m time.Month, d int) int {
	return int(m)*100 + d
}

func validMonthDay(m time.Month, d int) bool {
	if m < time.January || m > time.December || d < 1 {
		return false
	}
	lastDay := time.Date(coverageYear, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return d <= lastDay
}

func validRate(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
