package notifier

import "context"

// Logger интерфейс логгера уведомлений
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sender отправляет письмо одному получателю
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
