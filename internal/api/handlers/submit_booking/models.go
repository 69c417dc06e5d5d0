package submit_booking

import (
	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	handlers.BookingForm
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	BookingID   string  `json:"bookingId"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"totalPrice"`
	ShareToken  string  `json:"shareToken,omitempty"`
	ShareURL    string  `json:"shareUrl,omitempty"`
	ChatLink    string  `json:"chatLink,omitempty"`
	TokenMinted bool    `json:"tokenMinted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(bookingID, userID string) (*submitBooking.Request, error) {
	details, err := r.PersonalDetails()
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Form: submitBooking.Form{
			Name:           details.Name,
			Email:          details.Email,
			Phone:          details.Phone,
			TravelerCount:  details.TravelerCount,
			ChildCount:     details.ChildCount,
			ChildrenAges:   details.ChildrenAges,
			DepartureDate:  details.DepartureDate,
			ReturnDate:     details.ReturnDate,
			DepartureCity:  details.DepartureCity,
			CustomRequests: r.CustomRequests,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		BookingID:   resp.BookingID,
		Status:      string(resp.Status),
		TotalPrice:  resp.TotalPrice,
		ShareToken:  resp.ShareToken,
		ShareURL:    resp.ShareURL,
		ChatLink:    resp.ChatLink,
		TokenMinted: resp.TokenMinted,
	}
}
