package use_credit

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	useCredit "github.com/m04kA/SMC-StudioSchedule/internal/usecase/use_credit"
)

// UseCreditRequest HTTP request model
type UseCreditRequest struct {
	StudentID   string `json:"studentId"`
	FixedSlotID string `json:"fixedSlotId"`
	Date        string `json:"date"`
	CreditRef   string `json:"creditRef"`
}

// CreditDTO разовое посещение за кредит
type CreditDTO struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	FixedSlotID string `json:"fixedSlotId"`
	Date        string `json:"date"`
	CreditRef   string `json:"creditRef"`
	CreatedAt   string `json:"createdAt"`
}

// CreditResponse HTTP response model
type CreditResponse struct {
	Credit    CreditDTO             `json:"credit"`
	Occupancy handlers.OccupancyDTO `json:"occupancy"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UseCreditRequest) ToUseCaseRequest(role domain.Role) (*useCredit.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &useCredit.Request{
		StudentID:   r.StudentID,
		FixedSlotID: r.FixedSlotID,
		Date:        date,
		CreditRef:   r.CreditRef,
		Role:        role,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *useCredit.Response) *CreditResponse {
	return &CreditResponse{
		Credit: CreditDTO{
			ID:          resp.Credit.ID,
			StudentID:   resp.Credit.StudentID,
			FixedSlotID: resp.Credit.FixedSlotID,
			Date:        handlers.FormatDate(resp.Credit.Date),
			CreditRef:   resp.Credit.CreditRef,
			CreatedAt:   resp.Credit.CreatedAt.Format(time.RFC3339),
		},
		Occupancy: handlers.FromOccupancy(resp.Occupancy),
	}
}
