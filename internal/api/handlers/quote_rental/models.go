package quote_rental

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	quoteRental "github.com/m04kA/SMC-TravelBooking/internal/usecase/quote_rental"
)

// RentalQuoteResponse HTTP response model.
// Поля цены отсутствуют, пока даты не позволяют расчет (computable=false).
type RentalQuoteResponse struct {
	SubjectID       string   `json:"subjectId"`
	Start           *string  `json:"start,omitempty"` // "2025-07-10"
	End             *string  `json:"end,omitempty"`
	Computable      bool     `json:"computable"`
	Period          *string  `json:"period,omitempty"`
	TotalDays       *int     `json:"totalDays,omitempty"`
	LongStay        *bool    `json:"longStay,omitempty"`
	DailyRate       *float64 `json:"dailyRate,omitempty"`
	DailyDeductible *float64 `json:"dailyDeductible,omitempty"`
	TotalPrice      *float64 `json:"totalPrice,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteRental.Response) *RentalQuoteResponse {
	out := &RentalQuoteResponse{
		SubjectID:  resp.SubjectID,
		Start:      formatDate(resp.Start),
		End:        formatDate(resp.End),
		Computable: resp.Computable,
	}

	if !resp.Computable || resp.Quote == nil {
		out.Computable = false
		return out
	}

	q := resp.Quote
	out.Period = &q.Period.Name
	out.TotalDays = &q.TotalDays
	out.LongStay = &q.LongStay
	out.DailyRate = &q.DailyRate
	out.DailyDeductible = &q.DailyDeductible
	out.TotalPrice = &q.TotalPrice
	return out
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
