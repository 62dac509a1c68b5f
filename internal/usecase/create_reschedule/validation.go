package create_reschedule

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/makeup"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.StudentID == "" && req.OriginEnrollmentID == nil {
		return fmt.Errorf("%w: studentID or originEnrollmentID is required", ErrInvalidInput)
	}
	if !req.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if domain.NewOccurrence(req.OriginSlotID, req.OriginDate).Equal(
		domain.NewOccurrence(req.DestinationSlotID, req.DestinationDate)) {
		return ErrSameOccurrence
	}
	return nil
}

// resolveStudent определяет ученика заявки по записи на слот или по id
func resolveStudent(snap *domain.Snapshot, req *Request) (*domain.Student, *domain.Enrollment, error) {
	var enrollment *domain.Enrollment
	studentID := req.StudentID

	if req.OriginEnrollmentID != nil {
		e, ok := snap.Enrollment(*req.OriginEnrollmentID)
		if !ok || e.FixedSlotID != req.OriginSlotID {
			return nil, nil, ErrEnrollmentNotFound
		}
		if studentID != "" && studentID != e.StudentID {
			return nil, nil, fmt.Errorf("%w: enrollment belongs to another student", ErrInvalidInput)
		}
		enrollment = e
		studentID = e.StudentID
	}

	student, ok := snap.Student(studentID)
	if !ok {
		return nil, nil, ErrStudentNotFound
	}
	return student, enrollment, nil
}

// validateOrigin проверяет, что ученик может уйти с исходного занятия
// Для отработки нужен отмеченный пропуск и открытое окно, для переноса ученик должен быть в составе
func validateOrigin(snap *domain.Snapshot, req *Request, student *domain.Student, now time.Time) error {
	origin := domain.NewOccurrence(req.OriginSlotID, req.OriginDate)

	if req.IsMakeup {
		if !makeup.IsAbsent(snap, origin, student.ID) {
			return ErrNoAbsence
		}
		if makeup.IsExpired(origin.Date, now) {
			return fmt.Errorf("%w: deadline %s", ErrMakeupExpired, makeup.Deadline(origin.Date).Format(domain.DateFormat))
		}
		if domain.DateOnly(req.DestinationDate).After(makeup.Deadline(origin.Date)) {
			return fmt.Errorf("%w: destination after deadline %s", ErrMakeupExpired, makeup.Deadline(origin.Date).Format(domain.DateFormat))
		}
		return nil
	}

	if domain.IsDateInPast(origin.Date, now) {
		return fmt.Errorf("%w: origin %s", ErrDateInPast, origin)
	}
	if !roster.Resolve(snap, origin.SlotID, origin.Date).Has(student.ID) {
		return ErrNotAttending
	}
	return nil
}

// hasOpenRequest true, если у ученика уже есть pending или approved заявка с этого занятия
func hasOpenRequest(snap *domain.Snapshot, origin domain.Occurrence, studentID string) bool {
	for _, r := range snap.ReschedulesFrom(origin) {
		if r.StudentID == studentID && r.IsOpen() {
			return true
		}
	}
	return false
}
