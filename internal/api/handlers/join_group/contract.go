package join_group

import (
	"context"

	joinGroup "github.com/m04kA/SMC-TravelBooking/internal/usecase/join_group"
)

type JoinGroupUseCase interface {
	Execute(ctx context.Context, req *joinGroup.Request) (*joinGroup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
