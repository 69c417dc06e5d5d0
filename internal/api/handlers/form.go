package handlers

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

const msgDateFormat = "date must be in YYYY-MM-DD format"

// BookingForm поля формы бронирования в HTTP запросе
type BookingForm struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	TravelerCount  int     `json:"travelerCount"`
	ChildCount     int     `json:"childCount"`
	ChildrenAges   string  `json:"childrenAges,omitempty"`
	DepartureDate  string  `json:"departureDate,omitempty"` // "2025-10-15"
	ReturnDate     *string `json:"returnDate,omitempty"`
	DepartureCity  *string `json:"departureCity,omitempty"`
	CustomRequests *string `json:"customRequests,omitempty"`
}

// Dates разбирает даты формы. Пустая дата отправления дает нулевое время.
// Ошибки формата возвращаются как *domain.ValidationError по полям.
func (f *BookingForm) Dates() (time.Time, *time.Time, error) {
	verr := domain.NewValidationError()

	departure, err := ParseOptionalDate(f.DepartureDate)
	if err != nil {
		verr.Add("departureDate", msgDateFormat)
	}

	var ret *time.Time
	if f.ReturnDate != nil && strings.TrimSpace(*f.ReturnDate) != "" {
		parsed, err := ParseDate(*f.ReturnDate)
		if err != nil {
			verr.Add("returnDate", msgDateFormat)
		} else {
			ret = &parsed
		}
	}

	if verr.HasErrors() {
		return time.Time{}, nil, verr
	}
	return departure, ret, nil
}

// PersonalDetails переводит форму в данные бронирования
func (f *BookingForm) PersonalDetails() (domain.PersonalDetails, error) {
	departure, ret, err := f.Dates()
	if err != nil {
		return domain.PersonalDetails{}, err
	}

	return domain.PersonalDetails{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		TravelerCount: f.TravelerCount,
		ChildCount:    f.ChildCount,
		ChildrenAges:  f.ChildrenAges,
		DepartureDate: departure,
		ReturnDate:    ret,
		DepartureCity: f.DepartureCity,
	}, nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, strings.TrimSpace(s))
}

// ParseOptionalDate как ParseDate, но пустая строка дает нулевое время
func ParseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}
