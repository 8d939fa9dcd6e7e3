package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

type LeadPlatform string

const (
	PlatformInstagram LeadPlatform = "Instagram"
	PlatformFacebook  LeadPlatform = "Facebook"
)

type LeadType string

const (
	TypeDM      LeadType = "DM"
	TypeComment LeadType = "Comment"
	TypeForm    LeadType = "Lead Form"
)

type LeadStatus string

const (
	StatusNew        LeadStatus = "New"
	StatusContacted  LeadStatus = "Contacted"
	StatusFollowedUp LeadStatus = "Followed Up"
	StatusConverted  LeadStatus = "Converted"
	StatusClosed     LeadStatus = "Closed"
)

// AllStatuses na ordem do pipeline. O histograma do dashboard percorre essa
// lista para garantir que status zerados também apareçam.
var AllStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusFollowedUp,
	StatusConverted,
	StatusClosed,
}

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

type MessageSender string

const (
	SenderSystem MessageSender = "system"
	SenderUser   MessageSender = "user"
	SenderLead   MessageSender = "lead"
)

// Message: uma rodada da conversa com o lead. Append-only dentro do Lead.
type Message struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
}

// Entidade: Lead
// Os campos JSON seguem o formato que o painel serializa no storage
// (camelCase), então uma coleção exportada pelo painel carrega aqui sem
// conversão.
type Lead struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Username       string       `json:"username"` // chave de deduplicação (case-sensitive)
	Platform       LeadPlatform `json:"platform"`
	Type           LeadType     `json:"type"`
	InitialMessage string       `json:"initialMessage"`
	Status         LeadStatus   `json:"status"`
	CapturedAt     time.Time    `json:"capturedAt"`
	Messages       []Message    `json:"messages"`
	Sentiment      Sentiment    `json:"sentiment,omitempty"` // vazio = análise pendente
}

var (
	ErrDuplicateUsername = errors.New("lead with this username already exists")
	ErrLeadNotFound      = errors.New("lead not found")
)

// Factory
func NewLead(name, username string, platform LeadPlatform, leadType LeadType, initialMessage string, capturedAt time.Time) (*Lead, error) {
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	lead := &Lead{
		ID:             uuid.New().String(),
		Name:           name,
		Username:       username,
		Platform:       platform,
		Type:           leadType,
		InitialMessage: initialMessage,
		Status:         StatusNew,
		CapturedAt:     capturedAt,
		Messages:       []Message{},
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Username == "" {
		return errors.New("username is required")
	}
	if l.InitialMessage == "" {
		return errors.New("initial message is required")
	}
	if !ValidPlatform(l.Platform) {
		return errors.New("platform must be Instagram or Facebook")
	}
	if !ValidType(l.Type) {
		return errors.New("type must be DM, Comment or Lead Form")
	}
	return nil
}

// Clone devolve uma cópia independente (o slice de mensagens incluso).
// O store entrega clones para fora; quem muta é só ele.
func (l *Lead) Clone() *Lead {
	c := *l
	c.Messages = make([]Message, len(l.Messages))
	copy(c.Messages, l.Messages)
	return &c
}

func ValidPlatform(p LeadPlatform) bool {
	return p == PlatformInstagram || p == PlatformFacebook
}

func ValidType(t LeadType) bool {
	return t == TypeDM || t == TypeComment || t == TypeForm
}

func ValidStatus(s LeadStatus) bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func ValidSentiment(s Sentiment) bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}

type LeadStoreInterface interface {
	All(ctx context.Context) []*Lead
	FindByID(ctx context.Context, id string) (*Lead, error)
	ExistsByUsername(ctx context.Context, username string) bool
	Insert(ctx context.Context, lead *Lead) error
	UpdateStatus(ctx context.Context, id string, status LeadStatus) error
	AppendMessage(ctx context.Context, id string, msg Message) error
}
