package entity

import "strings"

// Value Object: AutomationSettings
// Configuração da resposta automática. O backend não agenda o envio; o delay
// é dado que o painel respeita do lado dele.
type AutomationSettings struct {
	AutoReplyEnabled  bool     `json:"autoReplyEnabled"`
	ReplyDelayMinutes int      `json:"replyDelayMinutes"`
	Template          string   `json:"template"`
	Keywords          []string `json:"keywords"`
}

func DefaultAutomationSettings() AutomationSettings {
	return AutomationSettings{
		AutoReplyEnabled:  true,
		ReplyDelayMinutes: 5,
		Template:          "Hi {{name}}, thanks for reaching out! We've received your inquiry about '{{message}}'. One of our team members will be with you shortly. In the meantime, you can check our catalog here: https://example.com/catalog",
		Keywords:          []string{"price", "how much", "info", "details", "interested"},
	}
}

// MatchesKeyword verifica se a mensagem inicial contém alguma keyword
// (case-insensitive, substring).
func (s AutomationSettings) MatchesKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range s.Keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Render substitui os placeholders literais {{name}} e {{message}} do
// template. Não é template Go; o painel sempre usou tokens literais.
func (s AutomationSettings) Render(name, message string) string {
	return strings.NewReplacer(
		"{{name}}", name,
		"{{message}}", message,
	).Replace(s.Template)
}
