package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artesania-dev/joyeria-api/internal/service"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
	"github.com/artesania-dev/joyeria-api/pkg/response"
)

// ItemHandler handles jewelry item endpoints.
type ItemHandler struct {
	service *service.ItemService
}

// NewItemHandler constructs an item handler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{service: svc}
}

// ListAll godoc
// @Summary List all jewelry items
// @Description Every item across all collections, ordered by position
// @Tags Items
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /jewelry-items [get]
func (h *ItemHandler) ListAll(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListByCollection godoc
// @Summary List a collection's items
// @Tags Items
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /collections/{id}/items [get]
func (h *ItemHandler) ListByCollection(c *gin.Context) {
	items, err := h.service.ListByCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create jewelry item
// @Tags Items
// @Accept json
// @Produce json
// @Param payload body service.ItemRequest true "Item payload"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /jewelry-items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid item payload"))
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update jewelry item
// @Description Full replace of the mutable fields
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param payload body service.ItemRequest true "Item payload"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jewelry-items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	var req service.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid item payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Jewelry item updated successfully")
}

// Delete godoc
// @Summary Delete jewelry item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jewelry-items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Jewelry item deleted successfully")
}
