package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/artesania-dev/joyeria-api/internal/service"
	"github.com/artesania-dev/joyeria-api/pkg/response"
)

// SeedHandler exposes the demo-data seeding endpoint.
type SeedHandler struct {
	service *service.SeedService
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(svc *service.SeedService) *SeedHandler {
	return &SeedHandler{service: svc}
}

// Seed godoc
// @Summary Initialize demo data
// @Description Populates sample collections and items; a no-op when data exists
// @Tags Demo
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /init-demo-data [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	created, err := h.service.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.Message(c, "Demo data already exists")
		return
	}
	response.Message(c, "Demo data initialized successfully")
}
