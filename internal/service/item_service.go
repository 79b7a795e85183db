package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
)

type itemRepository interface {
	ListAll(ctx context.Context) ([]models.Item, error)
	ListByCollection(ctx context.Context, collectionID string) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ItemRequest captures the mutable item fields; updates replace all of
// them. The collection reference is taken as-is: a dangling id produces
// an orphaned item, not an error.
type ItemRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	ImageBase64  string `json:"image_base64"`
	CollectionID string `json:"collection_id" validate:"required"`
	Position     int    `json:"position"`
}

// ItemService handles the jewelry item workflows.
type ItemService struct {
	repo      itemRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewItemService creates a new item service.
func NewItemService(repo itemRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ItemService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// ListAll returns every item in display order.
func (s *ItemService) ListAll(ctx context.Context) ([]models.Item, error) {
	var cached []models.Item
	if s.cache.Get(ctx, cacheKeyItemsAll, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list items")
	}

	s.cache.Set(ctx, cacheKeyItemsAll, items)
	return items, nil
}

// ListByCollection returns a collection's items in display order. An
// unknown collection id simply yields an empty list.
func (s *ItemService) ListByCollection(ctx context.Context, collectionID string) ([]models.Item, error) {
	key := cacheKeyItemsPrefix + collectionID
	var cached []models.Item
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListByCollection(ctx, collectionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list collection items")
	}

	s.cache.Set(ctx, key, items)
	return items, nil
}

// Create persists a new item and returns it with id and timestamp
// assigned.
func (s *ItemService) Create(ctx context.Context, req ItemRequest) (*models.Item, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid item payload")
	}

	item := &models.Item{
		Name:         req.Name,
		Description:  req.Description,
		ImageBase64:  req.ImageBase64,
		CollectionID: req.CollectionID,
		Position:     req.Position,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create item")
	}

	s.cache.Invalidate(ctx)
	return item, nil
}

// Update replaces the mutable fields of the item. NotFound when the id
// does not exist.
func (s *ItemService) Update(ctx context.Context, id string, req ItemRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid item payload")
	}

	item := &models.Item{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ImageBase64:  req.ImageBase64,
		CollectionID: req.CollectionID,
		Position:     req.Position,
	}

	affected, err := s.repo.Update(ctx, item)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update item")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "jewelry item not found")
	}

	s.cache.Invalidate(ctx)
	return nil
}

// Delete removes the item. NotFound when the id does not exist.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete item")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "jewelry item not found")
	}

	s.cache.Invalidate(ctx)
	return nil
}
