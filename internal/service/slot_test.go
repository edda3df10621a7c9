package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports/mocks"
)

func TestSlotService_Create_Success(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	slot, err := svc.Create(context.Background(), "a1", domain.CreateSlotInput{
		Date:       "01.09.2026",
		Time:       "10:00",
		MaxClients: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", slot.Date, "date must be stored in canonical form")
	assert.Equal(t, "a1", slot.AdminID)
	assert.NotEmpty(t, slot.ID)
	assert.Empty(t, slot.BookedClients)
}

func TestSlotService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	tests := []struct {
		name  string
		input domain.CreateSlotInput
	}{
		{"missing time", domain.CreateSlotInput{Date: "2026-09-01", MaxClients: 5}},
		{"zero capacity", domain.CreateSlotInput{Date: "2026-09-01", Time: "10:00"}},
		{"negative capacity", domain.CreateSlotInput{Date: "2026-09-01", Time: "10:00", MaxClients: -1}},
		{"bad date", domain.CreateSlotInput{Date: "someday", Time: "10:00", MaxClients: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "a1", tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSlotService_UpdateCapacity_Validation(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	_, err := svc.UpdateCapacity(context.Background(), "s1", "a1", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSlotService_UpdateCapacity_Success(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	updated := &domain.Slot{ID: "s1", MaxClients: 10}
	repo.EXPECT().UpdateCapacity(mock.Anything, "s1", "a1", 10).Return(updated, nil)

	slot, err := svc.UpdateCapacity(context.Background(), "s1", "a1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, slot.MaxClients)
}
