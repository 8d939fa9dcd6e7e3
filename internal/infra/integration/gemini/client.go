package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

const defaultModel = "gemini-3-flash-preview"

// Mensagens fixas de fallback do rascunho. Não são erros: o texto volta pro
// operador, que pode editar, enviar ou descartar.
const (
	fallbackNotConfigured = "API Key not configured. Please add your key to use AI features."
	fallbackEmptyReply    = "I'm sorry, I couldn't generate a reply right now."
	fallbackCallFailed    = "Failed to generate AI response. Please try again."
)

// Client fala com o Gemini para análise de sentimento e rascunho de
// resposta. Tentativa única, sem retry, sem timeout além do transporte.
// Nenhuma das duas operações muta estado — regenerar é sempre seguro.
type Client struct {
	client *genai.Client
	model  string

	// hook de métricas (opcional)
	OnError func(operation string)
}

// NewClient cria o cliente. Sem API key não é erro: o client degrada para
// os valores default em todas as chamadas.
func NewClient(ctx context.Context, apiKey string) *Client {
	c := &Client{model: defaultModel}

	if apiKey == "" {
		log.Println("⚠️ Gemini: API key não configurada, respostas de IA degradadas")
		return c
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("⚠️ Gemini: falha ao criar client, respostas de IA degradadas: %v", err)
		return c
	}

	c.client = client
	return c
}

// Configured indica se há client real por trás (usado pelo /health).
func (c *Client) Configured() bool {
	return c != nil && c.client != nil
}

// AnalyzeSentiment classifica a mensagem em Positive, Neutral ou Negative.
// Qualquer falha, ou resposta fora do conjunto, vira Neutral.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (entity.Sentiment, error) {
	if !c.Configured() {
		return entity.SentimentNeutral, nil
	}

	prompt := fmt.Sprintf(`Analyze the sentiment of this lead message: %q.
Reply with ONLY one word: Positive, Neutral, or Negative.`, text)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.recordError("sentiment")
		return entity.SentimentNeutral, fmt.Errorf("gemini sentiment call failed: %w", err)
	}

	result := entity.Sentiment(strings.TrimSpace(resp.Text()))
	if !entity.ValidSentiment(result) {
		return entity.SentimentNeutral, nil
	}
	return result, nil
}

// DraftReply gera uma resposta proposta para o lead. Falhas nunca viram
// erro para o chamador: voltam como texto de fallback.
func (c *Client) DraftReply(ctx context.Context, leadName, leadMessage, businessContext string) (string, error) {
	if !c.Configured() {
		return fallbackNotConfigured, nil
	}

	prompt := fmt.Sprintf(`You are a social media manager. Generate a professional, friendly, and helpful response to this lead.
Lead Name: %s
Lead Message: %q
Business Context: %s

Requirements:
1. Keep it under 300 characters.
2. Be personal and use the lead's name.
3. Address their specific query if possible.
4. Include a call to action or a friendly closing.`, leadName, leadMessage, businessContext)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("⚠️ Gemini: geração de rascunho falhou: %v", err)
		c.recordError("draft")
		return fallbackCallFailed, nil
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return fallbackEmptyReply, nil
	}
	return reply, nil
}

func (c *Client) recordError(operation string) {
	if c.OnError != nil {
		c.OnError(operation)
	}
}
