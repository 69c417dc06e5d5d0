package ratetable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TravelBooking/pkg/txmanager"
)

const (
	tablesTable  = "rate_tables"
	periodsTable = "rate_periods"
)

// Repository репозиторий тарифных таблиц аренды
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория тарифных таблиц
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{db: db, txManager: txManager}
}

// GetBySubjectID получает тарифную таблицу предмета вместе с сезонами
func (r *Repository) GetBySubjectID(ctx context.Context, subjectID string) (*domain.RateTable, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"subject_id",
		"daily_deductible",
		"short_stay_threshold",
		"updated_at",
	).
		From(tablesTable).
		Where(squirrel.Eq{"subject_id": subjectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySubjectID - build select query: %v", ErrBuildQuery, err)
	}

	table := &domain.RateTable{}
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.SubjectID,
		&table.DailyDeductible,
		&table.ShortStayThreshold,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRateTableNotFound
		}
		return nil, fmt.Errorf("%w: GetBySubjectID - scan table: %v", ErrScanRow, err)
	}
	table.UpdatedAt = updatedAt.Time

	periods, err := r.getPeriods(ctx, executor, subjectID)
	if err != nil {
		return nil, err
	}
	table.Periods = periods

	return table, nil
}

func (r *Repository) getPeriods(ctx context.Context, executor DBExecutor, subjectID string) ([]domain.Period, error) {
	query, args, err := psqlbuilder.Select(
		"name",
		"start_month",
		"start_day",
		"end_month",
		"end_day",
		"short_stay_daily_rate",
		"long_stay_daily_rate",
	).
		From(periodsTable).
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getPeriods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getPeriods - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.Period, 0)
	for rows.Next() {
		var (
			p                    domain.Period
			startMonth, endMonth int
		)
		if err := rows.Scan(
			&p.Name,
			&startMonth,
			&p.StartDay,
			&endMonth,
			&p.EndDay,
			&p.ShortStayDailyRate,
			&p.LongStayDailyRate,
		); err != nil {
			return nil, fmt.Errorf("%w: getPeriods - scan period: %v", ErrScanRow, err)
		}
		p.StartMonth = time.Month(startMonth)
		p.EndMonth = time.Month(endMonth)
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getPeriods - rows iteration: %v", ErrScanRow, err)
	}

	return periods, nil
}

// Upsert создает или полностью заменяет тарифную таблицу предмета.
// Сезоны перезаписываются целиком в одной транзакции.
func (r *Repository) Upsert(ctx context.Context, table *domain.RateTable) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		executor := txmanager.GetExecutor(txCtx, r.db)

		// 1. Заголовок таблицы
		query, args, err := psqlbuilder.Insert(tablesTable).
			Columns("subject_id", "daily_deductible", "short_stay_threshold", "updated_at").
			Values(table.SubjectID, table.DailyDeductible, table.ShortStayThreshold, table.UpdatedAt).
			Suffix("ON CONFLICT (subject_id) DO UPDATE SET " +
				"daily_deductible = EXCLUDED.daily_deductible, " +
				"short_stay_threshold = EXCLUDED.short_stay_threshold, " +
				"updated_at = EXCLUDED.updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
		}

		// 2. Удаляем старые сезоны
		query, args, err = psqlbuilder.Delete(periodsTable).
			Where(squirrel.Eq{"subject_id": table.SubjectID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Upsert - build delete query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			return fmt.Errorf("%w: Upsert - execute delete: %v", ErrExecQuery, err)
		}

		if len(table.Periods) == 0 {
			return nil
		}

		// 3. Вставляем сезоны одним запросом
		insert := psqlbuilder.Insert(periodsTable).Columns(
			"subject_id",
			"position",
			"name",
			"start_month",
			"start_day",
			"end_month",
			"end_day",
			"short_stay_daily_rate",
			"long_stay_daily_rate",
		)
		for i, p := range table.Periods {
			insert = insert.Values(
				table.SubjectID,
				i,
				p.Name,
				int(p.StartMonth),
				p.StartDay,
				int(p.EndMonth),
				p.EndDay,
				p.ShortStayDailyRate,
				p.LongStayDailyRate,
			)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Upsert - build periods insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			return fmt.Errorf("%w: Upsert - execute periods insert: %v", ErrExecQuery, err)
		}

		return nil
	})
}
