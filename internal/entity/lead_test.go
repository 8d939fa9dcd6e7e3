package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/sociallead-crm/internal/entity"
)

func TestNewLeadDefaults(t *testing.T) {
	capturedAt := time.Now().Add(-time.Hour)

	lead, err := entity.NewLead("David Lee", "@dlee", entity.PlatformInstagram, entity.TypeComment, "How much?", capturedAt)

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Empty(t, lead.Messages)
	assert.NotNil(t, lead.Messages)
	assert.Equal(t, capturedAt, lead.CapturedAt)
	assert.Empty(t, lead.Sentiment) // análise pendente até a IA responder
}

func TestNewLeadZeroCapturedAtDefaultsToNow(t *testing.T) {
	lead, err := entity.NewLead("David Lee", "@dlee", entity.PlatformFacebook, entity.TypeDM, "hi", time.Time{})

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), lead.CapturedAt, time.Minute)
}

func TestNewLeadValidation(t *testing.T) {
	cases := []struct {
		name     string
		leadName string
		username string
		platform entity.LeadPlatform
		leadType entity.LeadType
		message  string
	}{
		{"empty name", "", "@u", entity.PlatformInstagram, entity.TypeDM, "hi"},
		{"empty username", "Name", "", entity.PlatformInstagram, entity.TypeDM, "hi"},
		{"empty message", "Name", "@u", entity.PlatformInstagram, entity.TypeDM, ""},
		{"bad platform", "Name", "@u", entity.LeadPlatform("TikTok"), entity.TypeDM, "hi"},
		{"bad type", "Name", "@u", entity.PlatformInstagram, entity.LeadType("Story"), "hi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewLead(tc.leadName, tc.username, tc.platform, tc.leadType, tc.message, time.Now())
			assert.Error(t, err)
		})
	}
}

func TestLeadCloneIsIndependent(t *testing.T) {
	lead, _ := entity.NewLead("David Lee", "@dlee", entity.PlatformInstagram, entity.TypeComment, "How much?", time.Now())
	lead.Messages = append(lead.Messages, entity.Message{ID: "m1", Text: "hi", Sender: entity.SenderLead, Timestamp: time.Now()})

	clone := lead.Clone()
	clone.Status = entity.StatusClosed
	clone.Messages[0].Text = "changed"
	clone.Messages = append(clone.Messages, entity.Message{ID: "m2"})

	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, "hi", lead.Messages[0].Text)
	assert.Len(t, lead.Messages, 1)
}

func TestValidStatusCoversPipeline(t *testing.T) {
	for _, status := range entity.AllStatuses {
		assert.True(t, entity.ValidStatus(status))
	}
	assert.False(t, entity.ValidStatus(entity.LeadStatus("Archived")))
}

func TestAutomationSettingsKeywordMatch(t *testing.T) {
	settings := entity.DefaultAutomationSettings()

	assert.True(t, settings.MatchesKeyword("What is the PRICE?"))
	assert.True(t, settings.MatchesKeyword("how much does it cost"))
	assert.False(t, settings.MatchesKeyword("hello there"))
}

func TestAutomationSettingsRender(t *testing.T) {
	settings := entity.AutomationSettings{Template: "Hi {{name}}, about '{{message}}'"}

	rendered := settings.Render("Sarah", "pricing?")

	assert.Equal(t, "Hi Sarah, about 'pricing?'", rendered)
}
