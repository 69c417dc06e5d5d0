package ratetable

import (
	"context"
	"fmt"
)

// schemaStatements DDL тарифных таблиц, идемпотентны
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS rate_tables (
		subject_id           VARCHAR(64) PRIMARY KEY,
		daily_deductible     NUMERIC(10,2) NOT NULL DEFAULT 0,
		short_stay_threshold INTEGER NOT NULL DEFAULT 0,
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rate_periods (
		subject_id            VARCHAR(64) NOT NULL REFERENCES rate_tables (subject_id) ON DELETE CASCADE,
		position              INTEGER NOT NULL,
		name                  VARCHAR(64) NOT NULL,
		start_month           SMALLINT NOT NULL CHECK (start_month BETWEEN 1 AND 12),
		start_day             SMALLINT NOT NULL CHECK (start_day BETWEEN 1 AND 31),
		end_month             SMALLINT NOT NULL CHECK (end_month BETWEEN 1 AND 12),
		end_day               SMALLINT NOT NULL CHECK (end_day BETWEEN 1 AND 31),
		short_stay_daily_rate NUMERIC(10,2) NOT NULL,
		long_stay_daily_rate  NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (subject_id, position)
	)`,
}

// EnsureSchema создает таблицы, если их еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: EnsureSchema - %v", ErrExecQuery, err)
		}
	}
	return nil
}
