package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httpresp"
	ucAccount "github.com/Jeffry-N/Beiruti-Fade/internal/usecase/account"
)

// cacheInvalidator is the slice of the cache client a profile mutation needs.
type cacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string)
}

type ProfileHandler struct {
	get    *ucAccount.GetProfile
	update *ucAccount.UpdateProfile
	cache  cacheInvalidator
}

func NewProfileHandler(
	get *ucAccount.GetProfile,
	update *ucAccount.UpdateProfile,
	cache cacheInvalidator,
) *ProfileHandler {
	return &ProfileHandler{
		get:    get,
		update: update,
		cache:  cache,
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	kind, id, ok := profileTarget(c)
	if !ok {
		return
	}

	profile, err := h.get.Execute(c.Request.Context(), kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, profile)
}

// Update accepts a sparse key-value payload; unknown keys are ignored and
// empty values count as "not supplied".
func (h *ProfileHandler) Update(c *gin.Context) {
	kind, id, ok := profileTarget(c)
	if !ok {
		return
	}

	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_request", "Body must be a flat JSON object of strings.")
		return
	}

	if err := h.update.Execute(c.Request.Context(), kind, id, payload); err != nil {
		respondError(c, err)
		return
	}

	// A mutated barber row makes the cached directory stale; the TTL is only
	// a backstop.
	if kind == domain.KindBarber {
		h.cache.Invalidate(c.Request.Context(), barbersCacheKey)
	}

	httpresp.OK(c, gin.H{"message": "Profile updated"})
}

// profileTarget resolves the entity kind and id from the path. On failure it
// has already written the response.
func profileTarget(c *gin.Context) (domain.Kind, uint, bool) {
	kind, err := domain.ParseKind(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return "", 0, false
	}

	id, ok := pathID(c)
	if !ok {
		return "", 0, false
	}

	return kind, id, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
