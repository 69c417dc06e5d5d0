package catalog

import "errors"

var (
	// ErrSubjectNotFound возвращается, когда предмет каталога не найден
	ErrSubjectNotFound = errors.New("catalog.repository: subject not found")

	// ErrQuery возвращается при ошибке запроса к БД
	ErrQuery = errors.New("catalog.repository: query failed")
)
