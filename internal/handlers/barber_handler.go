package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeffry-N/Beiruti-Fade/internal/cache"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httpresp"
)

const barbersCacheKey = "barbers:all"

type BarberHandler struct {
	repo  domain.Repository
	cache *cache.Client
}

func NewBarberHandler(repo domain.Repository, cache *cache.Client) *BarberHandler {
	return &BarberHandler{
		repo:  repo,
		cache: cache,
	}
}

// List serves the public barber directory, read-through cached since it is
// the hottest endpoint of the booking flow.
func (h *BarberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var barbers []domain.Profile
	if h.cache.GetJSON(ctx, barbersCacheKey, &barbers) {
		httpresp.List(c, barbers)
		return
	}

	barbers, err := h.repo.ListBarbers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.SetJSON(ctx, barbersCacheKey, barbers, time.Minute)
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.repo.FindByID(c.Request.Context(), domain.KindBarber, id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, profile)
}
