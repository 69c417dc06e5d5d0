package join_group

import "errors"

var (
	// ErrGroupNotFound возвращается, когда по токену нет бронирования
	ErrGroupNotFound = errors.New("join_group: group not found")

	// ErrNotConfirmed возвращается, когда бронирование еще не подтверждено
	ErrNotConfirmed = errors.New("join_group: booking is not confirmed")

	// ErrAlreadyJoined возвращается, когда пользователь уже в группе
	ErrAlreadyJoined = errors.New("join_group: user already joined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("join_group: invalid input data")

	// ErrPersistence возвращается при недоступности хранилища, запрос можно повторить
	ErrPersistence = errors.New("join_group: storage unavailable")
)
