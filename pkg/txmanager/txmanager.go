package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrBeginTx  = errors.New("txmanager: failed to begin transaction")
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// DBExecutor общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// Manager выполняет функции в транзакции, передавая ее через context
type Manager struct {
	db *sql.DB
}

// New создает менеджер транзакций
func New(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Do выполняет fn в транзакции, вложенный вызов переиспользует внешнюю
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// GetExecutor возвращает транзакцию из контекста или db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
