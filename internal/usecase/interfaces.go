package usecase

import (
	"context"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

// SentimentAnalyzer classifica a mensagem inicial do lead. A chamada é
// aguardada dentro do capture; qualquer falha degrada para Neutral lá.
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (entity.Sentiment, error)
}

// ReplyDrafter gera um rascunho de resposta. Nunca muta o store; pode ser
// chamado quantas vezes o operador quiser ("Regenerate").
type ReplyDrafter interface {
	DraftReply(ctx context.Context, leadName, leadMessage, businessContext string) (string, error)
}

type SettingsStoreInterface interface {
	Load(ctx context.Context) (entity.AutomationSettings, error)
	Save(ctx context.Context, settings entity.AutomationSettings) error
}

type CaptureLeadInput struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	Platform       string `json:"platform"`
	Type           string `json:"type"`
	InitialMessage string `json:"initialMessage"`
	CapturedAt     string `json:"capturedAt,omitempty"` // RFC3339; vazio = agora
}

type CaptureLeadOutput struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Sentiment string `json:"sentiment"`
	Msg       string `json:"msg"`
	AutoReply string `json:"autoReply,omitempty"` // sugestão renderizada, se a automação casou
}

type SendMessageInput struct {
	LeadID string `json:"-"`
	Text   string `json:"text"`
	Sender string `json:"sender,omitempty"` // default: system
}

type UpdateLeadStatusInput struct {
	LeadID string `json:"-"`
	Status string `json:"status"`
}

type DraftReplyInput struct {
	LeadID          string `json:"-"`
	BusinessContext string `json:"businessContext,omitempty"`
}

type DraftReplyOutput struct {
	Reply string `json:"reply"`
}
