package quotes

import "errors"

var (
	// ErrSubjectNotFound возвращается, когда предмета нет в каталоге
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPriceUnavailable возвращается, когда у предмета нет корректной цены в каталоге
	ErrPriceUnavailable = errors.New("catalog price unavailable")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("service: storage unavailable")
)
