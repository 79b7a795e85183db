package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/artesania-dev/joyeria-api/internal/models"
)

// ItemRepository handles persistence for jewelry items.
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new repository instance.
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListAll returns every item ordered by display position.
func (r *ItemRepository) ListAll(ctx context.Context) ([]models.Item, error) {
	const query = `SELECT id, name, description, image_base64, collection_id, position, created_at
FROM jewelry_items ORDER BY position ASC`
	items := []models.Item{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListByCollection returns the items of one collection ordered by position.
func (r *ItemRepository) ListByCollection(ctx context.Context, collectionID string) ([]models.Item, error) {
	const query = `SELECT id, name, description, image_base64, collection_id, position, created_at
FROM jewelry_items WHERE collection_id = $1 ORDER BY position ASC`
	items := []models.Item{}
	if err := r.db.SelectContext(ctx, &items, query, collectionID); err != nil {
		return nil, fmt.Errorf("list items by collection: %w", err)
	}
	return items, nil
}

// Create persists a new item, assigning id and creation time.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO jewelry_items (id, name, description, image_base64, collection_id, position, created_at)
VALUES (:id, :name, :description, :image_base64, :collection_id, :position, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an item and reports how many
// rows matched.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) (int64, error) {
	const query = `UPDATE jewelry_items SET name = :name, description = :description,
image_base64 = :image_base64, collection_id = :collection_id, position = :position WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return 0, fmt.Errorf("update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update item rows affected: %w", err)
	}
	return affected, nil
}

// Delete removes one item and reports how many rows were deleted.
func (r *ItemRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jewelry_items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete item rows affected: %w", err)
	}
	return affected, nil
}
