package impl

import (
	"context"
	"testing"

	"fooddash/internal/domain/entity"
	mockRepo "fooddash/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_ListProviderContacts(t *testing.T) {
	repo := mockRepo.NewMockDirectoryRepository(t)
	service := NewDirectoryService(repo)

	ctx := context.Background()
	contacts := []*entity.Contact{{Name: "Green Grocer", Contact: "555-0100", Address: "1 Main St", City: "Springfield"}}
	repo.EXPECT().ProviderContacts(ctx, "Springfield").Return(contacts, nil)

	got, err := service.ListProviderContacts(ctx, "Springfield")
	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}

func TestDirectoryService_ListReceiverContacts_StoreFailure(t *testing.T) {
	repo := mockRepo.NewMockDirectoryRepository(t)
	service := NewDirectoryService(repo)

	ctx := context.Background()
	repo.EXPECT().ReceiverContacts(ctx, "All").Return(nil, errors.New("boom"))

	got, err := service.ListReceiverContacts(ctx, "All")
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to list receiver contacts")
}

func TestDirectoryService_GetFilterOptions(t *testing.T) {
	repo := mockRepo.NewMockDirectoryRepository(t)
	service := NewDirectoryService(repo)

	ctx := context.Background()
	opts := &entity.FilterOptions{Cities: []string{"Shelbyville", "Springfield"}}
	repo.EXPECT().FilterOptions(ctx).Return(opts, nil)

	got, err := service.GetFilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, opts, got)
}
