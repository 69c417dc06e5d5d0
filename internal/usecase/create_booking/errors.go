package create_booking

import "errors"

var (
	// ErrSubjectNotFound возвращается, когда предмета бронирования нет в каталоге
	ErrSubjectNotFound = errors.New("create_booking: subject not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("create_booking: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
