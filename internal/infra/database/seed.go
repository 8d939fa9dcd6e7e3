package database

import (
	"time"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

// SeedLeads é a coleção inicial usada quando o storage está vazio ou
// corrompido. Mesmos três leads de demonstração do painel.
func SeedLeads() []*entity.Lead {
	now := time.Now()

	return []*entity.Lead{
		{
			ID:             "1",
			Name:           "Sarah Jenkins",
			Username:       "@sarah_j",
			Platform:       entity.PlatformInstagram,
			Type:           entity.TypeComment,
			InitialMessage: "I would love to know more about the pricing!",
			Status:         entity.StatusNew,
			CapturedAt:     now.Add(-2 * time.Hour),
			Messages:       []entity.Message{},
			Sentiment:      entity.SentimentPositive,
		},
		{
			ID:             "2",
			Name:           "Michael Chen",
			Username:       "mchen88",
			Platform:       entity.PlatformFacebook,
			Type:           entity.TypeDM,
			InitialMessage: "Hi, do you offer group discounts?",
			Status:         entity.StatusContacted,
			CapturedAt:     now.Add(-24 * time.Hour),
			Messages: []entity.Message{
				{
					ID:        "m1",
					Text:      "Hi, do you offer group discounts?",
					Sender:    entity.SenderLead,
					Timestamp: now.Add(-24 * time.Hour),
				},
				{
					ID:        "m2",
					Text:      "Hello Michael! Yes, we do. How many people are in your group?",
					Sender:    entity.SenderSystem,
					Timestamp: now.Add(-23 * time.Hour),
				},
			},
			Sentiment: entity.SentimentNeutral,
		},
		{
			ID:             "3",
			Name:           "Alex Rivera",
			Username:       "@arivera_fitness",
			Platform:       entity.PlatformInstagram,
			Type:           entity.TypeForm,
			InitialMessage: "Lead Form Submission: Interest in Professional Tier",
			Status:         entity.StatusConverted,
			CapturedAt:     now.Add(-48 * time.Hour),
			Messages:       []entity.Message{},
			Sentiment:      entity.SentimentPositive,
		},
	}
}
