package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
)

type collectionRepository interface {
	List(ctx context.Context) ([]models.Collection, error)
	Create(ctx context.Context, collection *models.Collection) error
	Update(ctx context.Context, collection *models.Collection) (int64, error)
	DeleteCascade(ctx context.Context, id string) (int64, error)
}

// CollectionRequest captures the mutable collection fields; updates
// replace all of them.
type CollectionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
	Position    int    `json:"position"`
}

// CollectionService handles the collection workflows.
type CollectionService struct {
	repo      collectionRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCollectionService creates a new collection service.
func NewCollectionService(repo collectionRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CollectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns all collections in display order.
func (s *CollectionService) List(ctx context.Context) ([]models.Collection, error) {
	var cached []models.Collection
	if s.cache.Get(ctx, cacheKeyCollections, &cached) {
		return cached, nil
	}

	collections, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list collections")
	}

	s.cache.Set(ctx, cacheKeyCollections, collections)
	return collections, nil
}

// Create persists a new collection and returns it with id and timestamp
// assigned.
func (s *CollectionService) Create(ctx context.Context, req CollectionRequest) (*models.Collection, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid collection payload")
	}

	collection := &models.Collection{
		Name:        req.Name,
		Description: req.Description,
		ImageBase64: req.ImageBase64,
		Position:    req.Position,
	}

	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create collection")
	}

	s.cache.Invalidate(ctx)
	return collection, nil
}

// Update replaces the mutable fields of the collection. NotFound when
// the id does not exist.
func (s *CollectionService) Update(ctx context.Context, id string, req CollectionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid collection payload")
	}

	collection := &models.Collection{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ImageBase64: req.ImageBase64,
		Position:    req.Position,
	}

	affected, err := s.repo.Update(ctx, collection)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update collection")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "collection not found")
	}

	s.cache.Invalidate(ctx)
	return nil
}

// Delete removes the collection and all items that reference it.
// NotFound when the collection id does not exist; the cascade itself is
// unconditional.
func (s *CollectionService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete collection")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "collection not found")
	}

	s.cache.Invalidate(ctx)
	return nil
}
