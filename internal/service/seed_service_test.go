package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
)

type mockSeedCollectionRepo struct {
	count    int
	countErr error
	created  []models.Collection
}

func (m *mockSeedCollectionRepo) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockSeedCollectionRepo) Create(ctx context.Context, collection *models.Collection) error {
	collection.ID = uuid.NewString()
	m.created = append(m.created, *collection)
	return nil
}

type mockSeedItemRepo struct {
	created []models.Item
}

func (m *mockSeedItemRepo) Create(ctx context.Context, item *models.Item) error {
	item.ID = uuid.NewString()
	m.created = append(m.created, *item)
	return nil
}

func TestSeedServicePopulatesEmptyStore(t *testing.T) {
	collections := &mockSeedCollectionRepo{}
	items := &mockSeedItemRepo{}
	svc := NewSeedService(collections, items, nil, zap.NewNop())

	created, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, collections.created, 3)
	require.Len(t, items.created, 5)

	// Every seeded item must reference a seeded collection.
	ids := map[string]bool{}
	for _, collection := range collections.created {
		ids[collection.ID] = true
	}
	for _, item := range items.created {
		assert.True(t, ids[item.CollectionID])
	}
}

func TestSeedServiceSkipsNonEmptyStore(t *testing.T) {
	collections := &mockSeedCollectionRepo{count: 1}
	items := &mockSeedItemRepo{}
	svc := NewSeedService(collections, items, nil, zap.NewNop())

	created, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, collections.created)
	assert.Empty(t, items.created)
}
