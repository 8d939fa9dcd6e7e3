package usecase

import (
	"context"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Store          entity.LeadStoreInterface
	OnStatusChange func(status string) // hook de métricas (opcional)
}

func NewUpdateLeadStatusUseCase(store entity.LeadStoreInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Store: store}
}

// Execute aplica o status escolhido pelo operador. O pipeline não é uma
// máquina de estados estrita: qualquer status é alcançável de qualquer
// outro. Lead inexistente é no-op.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) error {
	status := entity.LeadStatus(input.Status)
	if !entity.ValidStatus(status) {
		return &DomainError{
			Code:    CodeInvalidStatus,
			Message: "status must be one of: New, Contacted, Followed Up, Converted, Closed",
		}
	}

	if err := uc.Store.UpdateStatus(ctx, input.LeadID, status); err != nil {
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist status: " + err.Error(),
		}
	}

	if uc.OnStatusChange != nil {
		uc.OnStatusChange(string(status))
	}

	return nil
}
