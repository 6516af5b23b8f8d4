package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeffry-N/Beiruti-Fade/internal/cache"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httpresp"
	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

const servicesCacheKey = "services:all"

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

func NewServiceHandler(db *gorm.DB, cache *cache.Client) *ServiceHandler {
	return &ServiceHandler{
		db:    db,
		cache: cache,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if h.cache.GetJSON(ctx, servicesCacheKey, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		respondError(c, err)
		return
	}

	h.cache.SetJSON(ctx, servicesCacheKey, services, 5*time.Minute)
	httpresp.List(c, services)
}
