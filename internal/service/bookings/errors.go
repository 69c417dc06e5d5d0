package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPriceLocked возвращается при попытке назначить цену после подтверждения
	ErrPriceLocked = errors.New("price can only be set on draft or pending bookings")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("service: storage unavailable")
)
