package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	"github.com/artesania-dev/joyeria-api/internal/service"
)

type stubItemRepo struct {
	items          []models.Item
	updateAffected int64
	deleteAffected int64
}

func (s *stubItemRepo) ListAll(ctx context.Context) ([]models.Item, error) {
	return s.items, nil
}

func (s *stubItemRepo) ListByCollection(ctx context.Context, collectionID string) ([]models.Item, error) {
	matched := []models.Item{}
	for _, item := range s.items {
		if item.CollectionID == collectionID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (s *stubItemRepo) Create(ctx context.Context, item *models.Item) error {
	item.ID = uuid.NewString()
	s.items = append(s.items, *item)
	return nil
}

func (s *stubItemRepo) Update(ctx context.Context, item *models.Item) (int64, error) {
	return s.updateAffected, nil
}

func (s *stubItemRepo) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteAffected, nil
}

func buildItemRouter(repo *stubItemRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewItemService(repo, nil, nil, zap.NewNop())
	h := NewItemHandler(svc)

	router := gin.New()
	router.GET("/jewelry-items", h.ListAll)
	router.GET("/collections/:id/items", h.ListByCollection)
	router.POST("/jewelry-items", h.Create)
	router.PUT("/jewelry-items/:id", h.Update)
	router.DELETE("/jewelry-items/:id", h.Delete)
	return router
}

func TestItemHandlerListAll(t *testing.T) {
	router := buildItemRouter(&stubItemRepo{items: []models.Item{
		{ID: "item-1", Name: "Anillo de Plata", CollectionID: "col-1"},
	}})

	req, _ := http.NewRequest(http.MethodGet, "/jewelry-items", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Anillo de Plata")
}

func TestItemHandlerListByUnknownCollection(t *testing.T) {
	router := buildItemRouter(&stubItemRepo{items: []models.Item{
		{ID: "item-1", CollectionID: "col-1"},
	}})

	req, _ := http.NewRequest(http.MethodGet, "/collections/unknown/items", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"data":[]`)
}

func TestItemHandlerCreate(t *testing.T) {
	router := buildItemRouter(&stubItemRepo{})

	req, _ := http.NewRequest(http.MethodPost, "/jewelry-items",
		strings.NewReader(`{"name":"Anillo","collection_id":"col-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestItemHandlerCreateMissingCollection(t *testing.T) {
	router := buildItemRouter(&stubItemRepo{})

	req, _ := http.NewRequest(http.MethodPost, "/jewelry-items",
		strings.NewReader(`{"name":"Anillo"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestItemHandlerUpdateNotFound(t *testing.T) {
	router := buildItemRouter(&stubItemRepo{updateAffected: 0})

	req, _ := http.NewRequest(http.MethodPut, "/jewelry-items/missing",
		strings.NewReader(`{"name":"Anillo","collection_id":"col-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Contains(t, resp.Body.String(), "jewelry item not found")
}

func TestItemHandlerDelete(t *testing.T) {
	router := buildItemRouter(&stubItemRepo{deleteAffected: 1})

	req, _ := http.NewRequest(http.MethodDelete, "/jewelry-items/item-1", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Jewelry item deleted successfully")
}
