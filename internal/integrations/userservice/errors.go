package userservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда профиль пользователя не найден
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Вызывающий использует данные из формы вместо профиля.
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
