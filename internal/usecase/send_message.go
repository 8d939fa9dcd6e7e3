package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/xavierca1/sociallead-crm/internal/entity"
)

type SendMessageUseCase struct {
	Store  entity.LeadStoreInterface
	OnSend func() // hook de métricas (opcional)
}

func NewSendMessageUseCase(store entity.LeadStoreInterface) *SendMessageUseCase {
	return &SendMessageUseCase{Store: store}
}

// Execute anexa uma mensagem à conversa. Se o lead ainda está em New, o
// próprio store avança para Contacted na mesma mutação (única transição
// automática do pipeline). Lead inexistente é no-op, não erro.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*entity.Message, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "message text is required",
		}
	}

	sender := entity.MessageSender(input.Sender)
	if sender != entity.SenderUser && sender != entity.SenderLead {
		sender = entity.SenderSystem
	}

	now := time.Now()
	msg := entity.Message{
		ID:        newMessageID(now),
		Text:      input.Text,
		Sender:    sender,
		Timestamp: now,
	}

	if err := uc.Store.AppendMessage(ctx, input.LeadID, msg); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist message: " + err.Error(),
		}
	}

	if uc.OnSend != nil {
		uc.OnSend()
	}

	return &msg, nil
}

// ULIDs ordenam por tempo, então os IDs acompanham a ordem cronológica das
// mensagens dentro do lead.
func newMessageID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
