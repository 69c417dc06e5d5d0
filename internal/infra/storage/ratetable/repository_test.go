package ratetable

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/txmanager"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db, txmanager.New(db)), mock
}

func TestRepository_GetBySubjectID(t *testing.T) {
	repo, mock := newRepo(t)
	updated := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT subject_id, daily_deductible, short_stay_threshold, updated_at FROM rate_tables WHERE subject_id = \$1`).
		WithArgs("car-1").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "daily_deductible", "short_stay_threshold", "updated_at"}).
			AddRow("car-1", 15.0, 3, updated))

	mock.ExpectQuery(`SELECT name, start_month, start_day, end_month, end_day, short_stay_daily_rate, long_stay_daily_rate FROM rate_periods WHERE subject_id = \$1 ORDER BY position`).
		WithArgs("car-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "start_month", "start_day", "end_month", "end_day", "short_stay_daily_rate", "long_stay_daily_rate"}).
			AddRow("baja", 9, 1, 6, 30, 50.0, 40.0).
			AddRow("alta", 7, 1, 8, 31, 90.0, 70.0))

	table, err := repo.GetBySubjectID(context.Background(), "car-1")
	require.NoError(t, err)

	assert.Equal(t, "car-1", table.SubjectID)
	assert.Equal(t, 15.0, table.DailyDeductible)
	assert.Equal(t, 3, table.ShortStayThreshold)
	assert.Equal(t, updated, table.UpdatedAt)
	require.Len(t, table.Periods, 2)
	assert.Equal(t, time.September, table.Periods[0].StartMonth)
	assert.Equal(t, "alta", table.Periods[1].Name)
	assert.Equal(t, 70.0, table.Periods[1].LongStayDailyRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBySubjectID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM rate_tables`).
		WithArgs("car-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySubjectID(context.Background(), "car-404")
	assert.ErrorIs(t, err, ErrRateTableNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBySubjectID_DBError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM rate_tables`).
		WithArgs("car-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetBySubjectID(context.Background(), "car-1")
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newRepo(t)
	updated := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	table := &domain.RateTable{
		SubjectID:       "car-1",
		DailyDeductible: 15,
		UpdatedAt:       updated,
		Periods: []domain.Period{
			{Name: "baja", StartMonth: time.September, StartDay: 1, EndMonth: time.June, EndDay: 30, ShortStayDailyRate: 50, LongStayDailyRate: 40},
			{Name: "alta", StartMonth: time.July, StartDay: 1, EndMonth: time.August, EndDay: 31, ShortStayDailyRate: 90, LongStayDailyRate: 70},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO rate_tables \(subject_id,daily_deductible,short_stay_threshold,updated_at\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(subject_id\) DO UPDATE`).
		WithArgs("car-1", 15.0, 0, updated).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM rate_periods WHERE subject_id = \$1`).
		WithArgs("car-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`INSERT INTO rate_periods`).
		WithArgs(
			"car-1", 0, "baja", 9, 1, 6, 30, 50.0, 40.0,
			"car-1", 1, "alta", 7, 1, 8, 31, 90.0, 70.0,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Upsert(context.Background(), table))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_RollbackOnError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO rate_tables`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Upsert(context.Background(), &domain.RateTable{SubjectID: "car-1"})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
