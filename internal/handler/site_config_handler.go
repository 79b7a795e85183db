package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artesania-dev/joyeria-api/internal/models"
	"github.com/artesania-dev/joyeria-api/internal/service"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
	"github.com/artesania-dev/joyeria-api/pkg/response"
)

// SiteConfigHandler handles the site configuration endpoints.
type SiteConfigHandler struct {
	service *service.SiteConfigService
}

// NewSiteConfigHandler constructs a site config handler.
func NewSiteConfigHandler(svc *service.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{service: svc}
}

// Get godoc
// @Summary Get the site configuration
// @Description Public site settings; the password digest is never included
// @Tags Configuration
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /config [get]
func (h *SiteConfigHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg)
}

// Update godoc
// @Summary Update the site configuration
// @Description Partial update; omitted fields stay untouched
// @Tags Configuration
// @Accept json
// @Produce json
// @Param payload body models.SiteConfigUpdate true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /config [put]
func (h *SiteConfigHandler) Update(c *gin.Context) {
	var req models.SiteConfigUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid config payload"))
		return
	}

	if err := h.service.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Configuration updated successfully")
}
