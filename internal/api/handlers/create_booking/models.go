package create_booking

import (
	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SubjectKind string `json:"subjectKind"`
	SubjectID   string `json:"subjectId"`
	Status      string `json:"status,omitempty"` // "draft" (по умолчанию) или "pending"
	handlers.BookingForm
}

// RentalQuoteResponse расчет аренды по тарифной таблице
type RentalQuoteResponse struct {
	Period          string  `json:"period"`
	TotalDays       int     `json:"totalDays"`
	DailyRate       float64 `json:"dailyRate"`
	DailyDeductible float64 `json:"dailyDeductible"`
	LongStay        bool    `json:"longStay"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking     *models.BookingResponse `json:"booking"`
	RentalQuote *RentalQuoteResponse    `json:"rentalQuote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	details, err := r.PersonalDetails()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         userID,
		Subject:        domain.SubjectRef{Kind: domain.SubjectKind(r.SubjectKind), ID: r.SubjectID},
		Status:         domain.BookingStatus(r.Status),
		Details:        details,
		CustomRequests: r.CustomRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{Booking: models.FromDomainBooking(resp.Booking)}
	if q := resp.RentalQuote; q != nil {
		out.RentalQuote = &RentalQuoteResponse{
			Period:          q.Period.Name,
			TotalDays:       q.TotalDays,
			DailyRate:       q.DailyRate,
			DailyDeductible: q.DailyDeductible,
			LongStay:        q.LongStay,
		}
	}
	return out
}
