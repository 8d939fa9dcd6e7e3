package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/sociallead-crm/internal/entity"
	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

func TestSendMessageDefaultsToSystemSender(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)

	var appended entity.Message
	mockStore.On("AppendMessage", ctx, "lead-1", mock.Anything).Run(func(args mock.Arguments) {
		appended = args.Get(2).(entity.Message)
	}).Return(nil)

	uc := usecase.NewSendMessageUseCase(mockStore)

	msg, err := uc.Execute(ctx, usecase.SendMessageInput{
		LeadID: "lead-1",
		Text:   "Thanks for asking!",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.SenderSystem, msg.Sender)
	assert.Equal(t, "Thanks for asking!", msg.Text)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Equal(t, msg.ID, appended.ID)
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	uc := usecase.NewSendMessageUseCase(mockStore)

	_, err := uc.Execute(ctx, usecase.SendMessageInput{LeadID: "lead-1", Text: "   "})

	assert.Error(t, err)
	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
	mockStore.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessageKeepsExplicitSender(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	mockStore.On("AppendMessage", ctx, "lead-1", mock.Anything).Return(nil)

	uc := usecase.NewSendMessageUseCase(mockStore)

	msg, err := uc.Execute(ctx, usecase.SendMessageInput{
		LeadID: "lead-1",
		Text:   "hello",
		Sender: "lead",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.SenderLead, msg.Sender)
}

func TestSendMessageIDsAreChronological(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	mockStore.On("AppendMessage", ctx, "lead-1", mock.Anything).Return(nil)

	uc := usecase.NewSendMessageUseCase(mockStore)

	first, err := uc.Execute(ctx, usecase.SendMessageInput{LeadID: "lead-1", Text: "one"})
	assert.NoError(t, err)
	second, err := uc.Execute(ctx, usecase.SendMessageInput{LeadID: "lead-1", Text: "two"})
	assert.NoError(t, err)

	// ULIDs: ordem lexicográfica segue a ordem de criação.
	assert.Less(t, first.ID, second.ID)
}
