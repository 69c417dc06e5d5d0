package ratetable

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/pkg/txmanager"
)

type DBExecutor = txmanager.DBExecutor

// TransactionManager выполняет функцию в транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
