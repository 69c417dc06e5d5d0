package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("submit_booking: booking not found")

	// ErrAccessDenied возвращается, когда отправляет не владелец бронирования
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrPriceUnavailable возвращается, когда итоговую цену невозможно определить
	ErrPriceUnavailable = errors.New("submit_booking: price unavailable")

	// ErrInvalidTransition возвращается для завершенных и отмененных бронирований
	ErrInvalidTransition = errors.New("submit_booking: booking cannot be submitted in its current status")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("submit_booking: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
