package notifier

import "time"

// Confirmation данные письма о подтверждении бронирования
type Confirmation struct {
	BookingID      string
	Status         string
	RecipientName  string
	RecipientEmail string
	SubjectTitle   string
	TravelerCount  int
	ChildCount     int
	TotalPrice     float64
	DepartureDate  time.Time
	ShareURL       string
	ChatLink       string
}
