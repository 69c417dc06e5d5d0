package ratetable

import "errors"

var (
	// ErrRateTableNotFound возвращается, когда у предмета нет тарифной таблицы
	ErrRateTableNotFound = errors.New("ratetable.repository: rate table not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ratetable.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ratetable.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ratetable.repository: failed to scan row")
)
