package booking

import "errors"

var (
	// ErrTrialNotFound возвращается, когда пробное занятие не найдено
	ErrTrialNotFound = errors.New("booking.repository: trial booking not found")

	// ErrCreditAlreadyUsed возвращается, когда ученик уже использовал кредит на это занятие
	ErrCreditAlreadyUsed = errors.New("booking.repository: credit already used for occurrence")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
