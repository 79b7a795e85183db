package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artesania-dev/joyeria-api/internal/service"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
	"github.com/artesania-dev/joyeria-api/pkg/response"
)

// CollectionHandler handles collection endpoints.
type CollectionHandler struct {
	service *service.CollectionService
}

// NewCollectionHandler constructs a collection handler.
func NewCollectionHandler(svc *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{service: svc}
}

// List godoc
// @Summary List collections
// @Description All collections ordered by display position
// @Tags Collections
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, collections)
}

// Create godoc
// @Summary Create collection
// @Tags Collections
// @Accept json
// @Produce json
// @Param payload body service.CollectionRequest true "Collection payload"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req service.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid collection payload"))
		return
	}
	collection, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, collection)
}

// Update godoc
// @Summary Update collection
// @Description Full replace of the mutable fields
// @Tags Collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Param payload body service.CollectionRequest true "Collection payload"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /collections/{id} [put]
func (h *CollectionHandler) Update(c *gin.Context) {
	var req service.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid collection payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Collection updated successfully")
}

// Delete godoc
// @Summary Delete collection
// @Description Removes the collection and every item that references it
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Collection and its items deleted successfully")
}
