package health

import "context"

// Check проверка доступности зависимости
type Check func(ctx context.Context) error

type Logger interface {
	Warn(format string, v ...interface{})
}
