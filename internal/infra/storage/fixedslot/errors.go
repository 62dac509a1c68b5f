package fixedslot

import "errors"

var (
	// ErrFixedSlotNotFound возвращается, когда слот не найден
	ErrFixedSlotNotFound = errors.New("fixedslot.repository: fixed slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fixedslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fixedslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fixedslot.repository: failed to scan row")
)
