package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/sociallead-crm/internal/entity"
	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

func TestUpdateLeadStatusDelegatesToStore(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	mockStore.On("UpdateStatus", ctx, "lead-1", entity.StatusConverted).Return(nil)

	uc := usecase.NewUpdateLeadStatusUseCase(mockStore)

	err := uc.Execute(ctx, usecase.UpdateLeadStatusInput{LeadID: "lead-1", Status: "Converted"})

	assert.NoError(t, err)
	mockStore.AssertCalled(t, "UpdateStatus", ctx, "lead-1", entity.StatusConverted)
}

func TestUpdateLeadStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	uc := usecase.NewUpdateLeadStatusUseCase(mockStore)

	err := uc.Execute(ctx, usecase.UpdateLeadStatusInput{LeadID: "lead-1", Status: "Archived"})

	assert.Error(t, err)
	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeInvalidStatus, domainErr.Code)
	mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateLeadStatusAnyTransitionAllowed(t *testing.T) {
	ctx := context.Background()

	// Closed continua editável: o pipeline não tem estado terminal.
	mockStore := new(MockLeadStore)
	mockStore.On("UpdateStatus", ctx, "lead-1", entity.StatusNew).Return(nil)

	uc := usecase.NewUpdateLeadStatusUseCase(mockStore)

	err := uc.Execute(ctx, usecase.UpdateLeadStatusInput{LeadID: "lead-1", Status: "New"})
	assert.NoError(t, err)
}
