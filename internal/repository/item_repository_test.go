package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesania-dev/joyeria-api/internal/models"
)

func newItemRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "image_base64", "collection_id", "position", "created_at"})
}

func TestItemRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectQuery("SELECT id, name, description, image_base64, collection_id, position, created_at").
		WillReturnRows(itemRows().
			AddRow("item-1", "Anillo de Plata", "", "", "col-1", 0, time.Now()).
			AddRow("item-2", "Collar de Perlas", "", "", "col-2", 1, time.Now()))

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)
}

func TestItemRepositoryListByCollection(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectQuery("SELECT id, name, description, image_base64, collection_id, position, created_at").
		WithArgs("col-1").
		WillReturnRows(itemRows().
			AddRow("item-1", "Anillo de Plata", "", "", "col-1", 0, time.Now()))

	items, err := repo.ListByCollection(context.Background(), "col-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "col-1", items[0].CollectionID)
}

func TestItemRepositoryListByCollectionEmpty(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectQuery("SELECT id, name, description, image_base64, collection_id, position, created_at").
		WithArgs("unknown").
		WillReturnRows(itemRows())

	items, err := repo.ListByCollection(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestItemRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectExec("INSERT INTO jewelry_items").
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.Item{Name: "Anillo de Plata", CollectionID: "col-1"}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestItemRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectExec("UPDATE jewelry_items SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), &models.Item{ID: "item-1", Name: "Anillo", CollectionID: "col-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestItemRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectExec("DELETE FROM jewelry_items WHERE id").
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestItemRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newItemRepoMock(t)
	defer cleanup()

	repo := NewItemRepository(db)
	mock.ExpectExec("DELETE FROM jewelry_items WHERE id").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.Zero(t, affected)
}
