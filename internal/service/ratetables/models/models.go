package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// ErrInvalidMonthDay возвращается при некорректной границе сезона
var ErrInvalidMonthDay = errors.New("invalid month-day, expected MM-DD")

// Request модели

// PeriodRequest сезон тарифной таблицы. Границы в формате "MM-DD", включительно.
type PeriodRequest struct {
	Name               string  `json:"name" toml:"name"`
	Start              string  `json:"start" toml:"start"`
	End                string  `json:"end" toml:"end"`
	ShortStayDailyRate float64 `json:"shortStayDailyRate" toml:"short_stay_daily_rate"`
	LongStayDailyRate  float64 `json:"longStayDailyRate" toml:"long_stay_daily_rate"`
}

// UpsertRateTableRequest запрос на создание или замену тарифной таблицы.
// Тот же формат читается из TOML файлов командой ratetable validate.
type UpsertRateTableRequest struct {
	UserID             string          `json:"-" toml:"-"`
	SubjectID          string          `json:"-" toml:"subject_id"`
	DailyDeductible    float64         `json:"dailyDeductible" toml:"daily_deductible"`
	ShortStayThreshold int             `json:"shortStayThreshold,omitempty" toml:"short_stay_threshold"`
	Periods            []PeriodRequest `json:"periods" toml:"periods"`
}

// ToDomainRateTable конвертирует запрос в domain модель
func (r *UpsertRateTableRequest) ToDomainRateTable() (*domain.RateTable, error) {
	table := &domain.RateTable{
		SubjectID:          r.SubjectID,
		DailyDeductible:    r.DailyDeductible,
		ShortStayThreshold: r.ShortStayThreshold,
		Periods:            make([]domain.Period, 0, len(r.Periods)),
	}

	for _, p := range r.Periods {
		startMonth, startDay, err := ParseMonthDay(p.Start)
		if err != nil {
			return nil, fmt.Errorf("period %q start: %w", p.Name, err)
		}
		endMonth, endDay, err := ParseMonthDay(p.End)
		if err != nil {
			return nil, fmt.Errorf("period %q end: %w", p.Name, err)
		}

		table.Periods = append(table.Periods, domain.Period{
			Name:               p.Name,
			StartMonth:         startMonth,
			StartDay:           startDay,
			EndMonth:           endMonth,
			EndDay:             endDay,
			ShortStayDailyRate: p.ShortStayDailyRate,
			LongStayDailyRate:  p.LongStayDailyRate,
		})
	}

	return table, nil
}

// Response модели

// PeriodResponse сезон тарифной таблицы
type PeriodResponse struct {
	Name               string  `json:"name"`
	Start              string  `json:"start"`
	End                string  `json:"end"`
	ShortStayDailyRate float64 `json:"shortStayDailyRate"`
	LongStayDailyRate  float64 `json:"longStayDailyRate"`
}

// RateTableResponse ответ с тарифной таблицей
type RateTableResponse struct {
	SubjectID          string           `json:"subjectId"`
	DailyDeductible    float64          `json:"dailyDeductible"`
	ShortStayThreshold int              `json:"shortStayThreshold"`
	Periods            []PeriodResponse `json:"periods"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// FromDomainRateTable конвертирует domain модель в DTO
func FromDomainRateTable(t *domain.RateTable) *RateTableResponse {
	if t == nil {
		return nil
	}

	resp := &RateTableResponse{
		SubjectID:          t.SubjectID,
		DailyDeductible:    t.DailyDeductible,
		ShortStayThreshold: t.Threshold(),
		Periods:            make([]PeriodResponse, 0, len(t.Periods)),
		UpdatedAt:          t.UpdatedAt,
	}

	for _, p := range t.Periods {
		resp.Periods = append(resp.Periods, PeriodResponse{
			Name:               p.Name,
			Start:              FormatMonthDay(p.StartMonth, p.StartDay),
			End:                FormatMonthDay(p.EndMonth, p.EndDay),
			ShortStayDailyRate: p.ShortStayDailyRate,
			LongStayDailyRate:  p.LongStayDailyRate,
		})
	}

	return resp
}

// ParseMonthDay разбирает границу сезона "MM-DD".
// Диапазон дня проверяет domain.Period.Validate.
func ParseMonthDay(s string) (time.Month, int, error) {
	var month, day int
	if n, err := fmt.Sscanf(s, "%02d-%02d", &month, &day); err != nil || n != 2 || len(s) != 5 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	return time.Month(month), day, nil
}

// FormatMonthDay форматирует границу сезона как "MM-DD"
func FormatMonthDay(m time.Month, d int) string {
	return fmt.Sprintf("%02d-%02d", int(m), d)
}
