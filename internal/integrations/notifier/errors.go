package notifier

import "errors"

var (
	// ErrNoRecipient возвращается, когда у бронирования нет email получателя
	ErrNoRecipient = errors.New("notifier: recipient email is empty")

	// ErrRender возвращается при ошибке сборки текста уведомления
	ErrRender = errors.New("notifier: failed to render message")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("notifier: failed to send message")
)
