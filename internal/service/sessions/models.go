package sessions

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Entry отметка присутствия участника
type Entry struct {
	StudentRef string `validate:"required"`
	Present    bool
}

// FinalizeRequest запрос на закрытие занятия
type FinalizeRequest struct {
	FixedSlotID string      `validate:"required"`
	Date        time.Time   `validate:"required"`
	Entries     []Entry     `validate:"dive"`
	Role        domain.Role `validate:"required"`
}

// FinalizeResponse итог занятия
type FinalizeResponse struct {
	Record    *domain.SessionRecord
	Corrected bool
}
