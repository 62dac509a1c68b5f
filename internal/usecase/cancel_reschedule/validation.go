package cancel_reschedule

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// canCancel отменить заявку может ее автор или привилегированная роль
func canCancel(req *Request, request *domain.RescheduleRequest) bool {
	return req.Role.IsPrivileged() || request.RequestedBy == req.ActorID
}

// validateApprovedCancel одобренную заявку можно отменить, пока занятие назначения не прошло
// Перенос возвращает ученика в исходное занятие, поэтому оно тоже не должно пройти
// Исходное занятие отработки всегда в прошлом
func validateApprovedCancel(request *domain.RescheduleRequest, now time.Time) error {
	if domain.IsDateInPast(request.DestinationDate, now) {
		return fmt.Errorf("%w: %s", ErrDatePassed, request.Destination())
	}
	if !request.IsMakeup && domain.IsDateInPast(request.OriginDate, now) {
		return fmt.Errorf("%w: origin %s", ErrDatePassed, request.Origin())
	}
	return nil
}
