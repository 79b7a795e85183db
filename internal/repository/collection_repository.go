package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/artesania-dev/joyeria-api/internal/models"
)

// CollectionRepository handles persistence for collections.
type CollectionRepository struct {
	db *sqlx.DB
}

// NewCollectionRepository creates a new repository instance.
func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// List returns all collections ordered by display position.
func (r *CollectionRepository) List(ctx context.Context) ([]models.Collection, error) {
	const query = `SELECT id, name, description, image_base64, position, created_at
FROM collections ORDER BY position ASC`
	collections := []models.Collection{}
	if err := r.db.SelectContext(ctx, &collections, query); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

// Count reports how many collections exist.
func (r *CollectionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM collections`); err != nil {
		return 0, fmt.Errorf("count collections: %w", err)
	}
	return count, nil
}

// Create persists a new collection, assigning id and creation time.
func (r *CollectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = uuid.NewString()
	}
	if collection.CreatedAt.IsZero() {
		collection.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO collections (id, name, description, image_base64, position, created_at)
VALUES (:id, :name, :description, :image_base64, :position, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, collection); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a collection and reports how
// many rows matched.
func (r *CollectionRepository) Update(ctx context.Context, collection *models.Collection) (int64, error) {
	const query = `UPDATE collections SET name = :name, description = :description,
image_base64 = :image_base64, position = :position WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, collection)
	if err != nil {
		return 0, fmt.Errorf("update collection: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update collection rows affected: %w", err)
	}
	return affected, nil
}

// DeleteCascade removes the collection's items and then the collection
// itself inside one transaction, and reports how many collection rows
// were deleted. Re-running after a partial failure is safe: deleting an
// already-emptied collection's items is a no-op.
func (r *CollectionRepository) DeleteCascade(ctx context.Context, id string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin cascade delete tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM jewelry_items WHERE collection_id = $1`, id); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete collection items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete collection: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete collection rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cascade delete tx: %w", err)
	}
	return affected, nil
}
