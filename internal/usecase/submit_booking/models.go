package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// Form поля формы бронирования
type Form struct {
	Name           string
	Email          string
	Phone          string
	TravelerCount  int
	ChildCount     int
	ChildrenAges   string
	DepartureDate  time.Time
	ReturnDate     *time.Time
	DepartureCity  *string
	CustomRequests *string
}

// PersonalDetails переводит форму в данные бронирования с нормализованными счетчиками
func (f Form) PersonalDetails() domain.PersonalDetails {
	d := domain.PersonalDetails{
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		TravelerCount: f.TravelerCount,
		ChildCount:    f.ChildCount,
		ChildrenAges:  f.ChildrenAges,
		DepartureDate: f.DepartureDate,
		ReturnDate:    f.ReturnDate,
		DepartureCity: f.DepartureCity,
	}
	d.Normalize()
	return d
}

// Request модель запроса на отправку бронирования
type Request struct {
	BookingID string
	UserID    string
	Form      Form
}

// Response результат отправки
type Response struct {
	BookingID   string
	Status      domain.BookingStatus
	TotalPrice  float64
	ShareToken  string
	ShareURL    string
	ChatLink    string
	TokenMinted bool // токен выпущен этой отправкой
}

// Settings параметры ссылок в ответе
type Settings struct {
	PublicBaseURL string // база ссылки приглашения
	AgencyPhone   string // телефон агентства для ссылки на чат
}
