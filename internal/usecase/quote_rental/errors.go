package quote_rental

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_rental: invalid input data")

	// ErrRateTableNotFound возвращается, когда у предмета нет тарифной таблицы
	ErrRateTableNotFound = errors.New("quote_rental: rate table not found")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("quote_rental: storage unavailable")
)
