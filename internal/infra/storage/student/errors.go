package student

import "errors"

var (
	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = errors.New("student.repository: student not found")

	// ErrEnrollmentNotFound возвращается, когда запись на слот не найдена
	ErrEnrollmentNotFound = errors.New("student.repository: enrollment not found")

	// ErrAlreadyEnrolled возвращается при повторной записи ученика на тот же слот
	ErrAlreadyEnrolled = errors.New("student.repository: student already enrolled in slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("student.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("student.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("student.repository: failed to scan row")
)
