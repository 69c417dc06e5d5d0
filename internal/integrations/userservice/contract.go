package userservice

// Logger интерфейс логгера клиента
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
