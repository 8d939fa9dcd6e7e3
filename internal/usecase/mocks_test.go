package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/sociallead-crm/internal/entity"
)

// MockLeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) All(ctx context.Context) []*entity.Lead {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.Lead)
}

func (m *MockLeadStore) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadStore) ExistsByUsername(ctx context.Context, username string) bool {
	args := m.Called(ctx, username)
	return args.Bool(0)
}

func (m *MockLeadStore) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadStore) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadStore) AppendMessage(ctx context.Context, id string, msg entity.Message) error {
	args := m.Called(ctx, id, msg)
	return args.Error(0)
}

// MockSentimentAnalyzer
type MockSentimentAnalyzer struct {
	mock.Mock
}

func (m *MockSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (entity.Sentiment, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(entity.Sentiment), args.Error(1)
}

// MockReplyDrafter
type MockReplyDrafter struct {
	mock.Mock
}

func (m *MockReplyDrafter) DraftReply(ctx context.Context, leadName, leadMessage, businessContext string) (string, error) {
	args := m.Called(ctx, leadName, leadMessage, businessContext)
	return args.String(0), args.Error(1)
}

// MockSettingsStore
type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) Load(ctx context.Context) (entity.AutomationSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.AutomationSettings), args.Error(1)
}

func (m *MockSettingsStore) Save(ctx context.Context, settings entity.AutomationSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
