package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

type CaptureLeadUseCase struct {
	Store     entity.LeadStoreInterface
	Analyzer  SentimentAnalyzer
	Settings  SettingsStoreInterface
	OnCapture func(platform, sentiment string) // hook de métricas (opcional)
}

func NewCaptureLeadUseCase(
	store entity.LeadStoreInterface,
	analyzer SentimentAnalyzer,
	settings SettingsStoreInterface,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Store:    store,
		Analyzer: analyzer,
		Settings: settings,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {

	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: errMsg,
		}
	}

	// Checagem antecipada: evita gastar uma chamada de IA num duplicado.
	if uc.Store.ExistsByUsername(ctx, input.Username) {
		return nil, &DomainError{
			Code:    CodeDuplicateLead,
			Message: "Warning: Lead from this user already exists.",
		}
	}

	// A análise de sentimento é aguardada ANTES do commit. Qualquer falha
	// degrada para Neutral; a captura nunca falha por causa da IA.
	sentiment := entity.SentimentNeutral
	if uc.Analyzer != nil {
		result, err := uc.Analyzer.AnalyzeSentiment(ctx, input.InitialMessage)
		if err != nil {
			log.Printf("⚠️ Gemini: análise de sentimento falhou, usando Neutral: %v", err)
		} else if entity.ValidSentiment(result) {
			sentiment = result
		}
	}

	lead, err := entity.NewLead(
		input.Name,
		input.Username,
		entity.LeadPlatform(input.Platform),
		entity.LeadType(input.Type),
		input.InitialMessage,
		parseDateOrNow(input.CapturedAt),
	)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: err.Error(),
		}
	}
	lead.Sentiment = sentiment

	if err := uc.Store.Insert(ctx, lead); err != nil {
		// Corrida entre a checagem antecipada e o insert: mesmo tratamento.
		if errors.Is(err, entity.ErrDuplicateUsername) {
			return nil, &DomainError{
				Code:    CodeDuplicateLead,
				Message: "Warning: Lead from this user already exists.",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	if uc.OnCapture != nil {
		uc.OnCapture(string(lead.Platform), string(lead.Sentiment))
	}

	output := &CaptureLeadOutput{
		ID:        lead.ID,
		Status:    string(lead.Status),
		Sentiment: string(lead.Sentiment),
		Msg:       fmt.Sprintf("New %s lead captured!", lead.Platform),
	}

	// Automação: se habilitada e a mensagem bate numa keyword, devolve a
	// sugestão renderizada junto. O painel decide quando enviar (delay).
	if uc.Settings != nil {
		settings, err := uc.Settings.Load(ctx)
		if err == nil && settings.AutoReplyEnabled && settings.MatchesKeyword(lead.InitialMessage) {
			output.AutoReply = settings.Render(lead.Name, lead.InitialMessage)
		}
	}

	return output, nil
}
