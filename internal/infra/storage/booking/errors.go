package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking возвращается при повторной вставке бронирования с тем же ID или токеном
	ErrDuplicateBooking = errors.New("booking.repository: duplicate booking")

	// ErrParticipantExists возвращается, когда пользователь уже есть среди участников
	ErrParticipantExists = errors.New("booking.repository: participant already exists")

	// ErrNotConfirmed возвращается при добавлении участника в неподтвержденное бронирование
	ErrNotConfirmed = errors.New("booking.repository: booking is not confirmed")

	// ErrCorruptDocument возвращается, когда документ нарушает инварианты хранилища
	ErrCorruptDocument = errors.New("booking.repository: corrupt booking document")

	// ErrPersistence возвращается при недоступности хранилища, операцию можно повторить
	ErrPersistence = errors.New("booking.repository: persistence failure")
)
