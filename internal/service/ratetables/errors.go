package ratetables

import "errors"

var (
	// ErrRateTableNotFound возвращается, когда тарифная таблица не найдена
	ErrRateTableNotFound = errors.New("rate table not found")

	// ErrSubjectNotFound возвращается, когда услуги нет в каталоге
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("service: storage unavailable")
)
