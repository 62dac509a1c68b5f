package domain

import "errors"

// Виды доменных ошибок
// Ошибки use case оборачивают один из видов, чтобы транспорт мог выбрать код ответа
var (
	ErrValidation             = errors.New("validation error")
	ErrCapacityExceeded       = errors.New("capacity exceeded")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConflictOccupied       = errors.New("time is occupied by a linked class type")
	ErrNotFound               = errors.New("not found")
	ErrDeadlineExpired        = errors.New("deadline expired")
	ErrAccessDenied           = errors.New("access denied")
)
