package slotblocks

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// ClassTypeRepository интерфейс репозитория модальностей и блокировок
type ClassTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ClassType, error)
	ToggleSlotBlock(ctx context.Context, block *domain.SlotBlock) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
