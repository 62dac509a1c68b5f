package review_reschedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("review_reschedule: invalid input data: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда роль не позволяет рассматривать заявки
	ErrAccessDenied = fmt.Errorf("review_reschedule: %w", domain.ErrAccessDenied)

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = fmt.Errorf("review_reschedule: request not found: %w", domain.ErrNotFound)

	// ErrInvalidTransition возвращается, если заявка уже рассмотрена или отменена
	ErrInvalidTransition = fmt.Errorf("review_reschedule: %w", domain.ErrInvalidStateTransition)

	// ErrDestinationPassed возвращается при одобрении заявки на прошедшее занятие
	ErrDestinationPassed = fmt.Errorf("review_reschedule: destination date has passed: %w", domain.ErrInvalidStateTransition)

	// ErrStudentNotEligible возвращается, если ученик перестал занимать место
	ErrStudentNotEligible = fmt.Errorf("review_reschedule: student is not eligible: %w", domain.ErrValidation)

	// ErrAlreadyAttending возвращается, если ученик уже есть в составе занятия назначения
	ErrAlreadyAttending = fmt.Errorf("review_reschedule: student already attends destination: %w", domain.ErrValidation)

	// ErrDestinationFull возвращается, когда к моменту одобрения мест не осталось
	ErrDestinationFull = fmt.Errorf("review_reschedule: destination occurrence is full: %w", domain.ErrCapacityExceeded)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("review_reschedule: internal error")
)
