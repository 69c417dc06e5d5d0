package load_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("load_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не участник
	ErrAccessDenied = errors.New("load_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_booking: invalid input data")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("load_booking: storage unavailable")
)
