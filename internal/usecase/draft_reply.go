package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

// Limite imposto no prompt; o corte aqui é só garantia caso o modelo ignore.
const maxDraftLength = 300

type DraftReplyUseCase struct {
	Store           entity.LeadStoreInterface
	Drafter         ReplyDrafter
	BusinessContext string // default vindo da config, sobrescrevível por request
}

func NewDraftReplyUseCase(store entity.LeadStoreInterface, drafter ReplyDrafter, businessContext string) *DraftReplyUseCase {
	return &DraftReplyUseCase{
		Store:           store,
		Drafter:         drafter,
		BusinessContext: businessContext,
	}
}

// Execute gera um rascunho de resposta para o lead. Idempotente: nada é
// gravado no store, e o operador pode regenerar à vontade. Falhas da IA
// viram texto de fallback, nunca erro — o rascunho continua editável.
func (uc *DraftReplyUseCase) Execute(ctx context.Context, input DraftReplyInput) (*DraftReplyOutput, error) {
	lead, err := uc.Store.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{
				Code:    CodeLeadNotFound,
				Message: "lead not found",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: err.Error(),
		}
	}

	businessContext := uc.BusinessContext
	if input.BusinessContext != "" {
		businessContext = input.BusinessContext
	}

	reply, err := uc.Drafter.DraftReply(ctx, lead.Name, lead.InitialMessage, businessContext)
	if err != nil {
		// O client já devolve fallbacks; esse caminho só existe se alguém
		// plugar outro drafter que propague erro.
		reply = "Failed to generate AI response. Please try again."
	}

	if len(reply) > maxDraftLength {
		reply = reply[:maxDraftLength]
	}

	return &DraftReplyOutput{Reply: reply}, nil
}
