package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда журнал занятия не найден
	ErrSessionNotFound = errors.New("session.repository: session record not found")

	// ErrSessionExists возвращается при повторном создании журнала того же занятия
	ErrSessionExists = errors.New("session.repository: session record already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
