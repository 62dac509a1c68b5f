package reschedule

import "errors"

var (
	// ErrRescheduleNotFound возвращается, когда заявка на перенос не найдена
	ErrRescheduleNotFound = errors.New("reschedule.repository: reschedule request not found")

	// ErrDuplicateOpenRequest возвращается, когда у ученика уже есть открытая заявка с того же занятия
	ErrDuplicateOpenRequest = errors.New("reschedule.repository: open request for origin already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reschedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reschedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reschedule.repository: failed to scan row")
)
