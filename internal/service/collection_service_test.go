package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
)

type mockCollectionRepo struct {
	collections    []models.Collection
	listErr        error
	createErr      error
	updateAffected int64
	updateErr      error
	deleteAffected int64
	deleteErr      error
	deletedID      string
}

func (m *mockCollectionRepo) List(ctx context.Context) ([]models.Collection, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.collections, nil
}

func (m *mockCollectionRepo) Create(ctx context.Context, collection *models.Collection) error {
	if m.createErr != nil {
		return m.createErr
	}
	collection.ID = uuid.NewString()
	m.collections = append(m.collections, *collection)
	return nil
}

func (m *mockCollectionRepo) Update(ctx context.Context, collection *models.Collection) (int64, error) {
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	return m.updateAffected, nil
}

func (m *mockCollectionRepo) DeleteCascade(ctx context.Context, id string) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.deletedID = id
	return m.deleteAffected, nil
}

func newTestCollectionService(repo collectionRepository) *CollectionService {
	return NewCollectionService(repo, nil, validator.New(), zap.NewNop())
}

func TestCollectionServiceList(t *testing.T) {
	repo := &mockCollectionRepo{collections: []models.Collection{
		{ID: "col-1", Name: "Anillos", Position: 0},
		{ID: "col-2", Name: "Collares", Position: 1},
	}}
	svc := newTestCollectionService(repo)

	collections, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "Anillos", collections[0].Name)
}

func TestCollectionServiceCreate(t *testing.T) {
	repo := &mockCollectionRepo{}
	svc := newTestCollectionService(repo)

	collection, err := svc.Create(context.Background(), CollectionRequest{Name: "Anillos", Position: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, collection.ID)
	assert.Equal(t, "Anillos", collection.Name)
	assert.Equal(t, 2, collection.Position)
}

func TestCollectionServiceCreateRequiresName(t *testing.T) {
	svc := newTestCollectionService(&mockCollectionRepo{})

	_, err := svc.Create(context.Background(), CollectionRequest{Description: "sin nombre"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCollectionServiceUpdate(t *testing.T) {
	repo := &mockCollectionRepo{updateAffected: 1}
	svc := newTestCollectionService(repo)

	require.NoError(t, svc.Update(context.Background(), "col-1", CollectionRequest{Name: "Anillos"}))
}

func TestCollectionServiceUpdateNotFound(t *testing.T) {
	repo := &mockCollectionRepo{updateAffected: 0}
	svc := newTestCollectionService(repo)

	err := svc.Update(context.Background(), "missing", CollectionRequest{Name: "Anillos"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Equal(t, "collection not found", appErrors.FromError(err).Message)
}

func TestCollectionServiceDelete(t *testing.T) {
	repo := &mockCollectionRepo{deleteAffected: 1}
	svc := newTestCollectionService(repo)

	require.NoError(t, svc.Delete(context.Background(), "col-1"))
	assert.Equal(t, "col-1", repo.deletedID)
}

func TestCollectionServiceDeleteNotFound(t *testing.T) {
	repo := &mockCollectionRepo{deleteAffected: 0}
	svc := newTestCollectionService(repo)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
