package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	ucAccount "github.com/Jeffry-N/Beiruti-Fade/internal/usecase/account"
)

// stubAccountRepo records the plan it receives so tests can inspect the
// statement the handler path produced.
type stubAccountRepo struct {
	applied *domain.UpdatePlan
	rows    int64
	profile *domain.Profile
}

func (s *stubAccountRepo) Insert(ctx context.Context, kind domain.Kind, acc domain.NewAccount) (uint, error) {
	return 1, nil
}

func (s *stubAccountRepo) FindByID(ctx context.Context, kind domain.Kind, id uint) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, httperr.ErrBusiness("account_not_found")
	}
	return s.profile, nil
}

func (s *stubAccountRepo) ListBarbers(ctx context.Context) ([]domain.Profile, error) {
	return nil, nil
}

func (s *stubAccountRepo) ApplyUpdate(ctx context.Context, plan *domain.UpdatePlan) (int64, error) {
	s.applied = plan
	return s.rows, nil
}

func (s *stubAccountRepo) Authenticate(ctx context.Context, kind domain.Kind, username, password string) (*domain.Profile, error) {
	return nil, httperr.ErrBusiness("invalid_credentials")
}

// recordingCache captures invalidations so tests can assert on them.
type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(ctx context.Context, keys ...string) {
	c.invalidated = append(c.invalidated, keys...)
}

func profileRouter(repo *stubAccountRepo, cache *recordingCache) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(audit.New(nil))
	h := NewProfileHandler(
		ucAccount.NewGetProfile(repo),
		ucAccount.NewUpdateProfile(repo, dispatcher),
		cache,
	)

	r := gin.New()
	r.GET("/api/profile/:type/:id", h.Get)
	r.PUT("/api/profile/:type/:id", h.Update)
	return r
}

func TestProfileUpdate_BuildsParameterizedStatement(t *testing.T) {
	repo := &stubAccountRepo{rows: 1}
	r := profileRouter(repo, &recordingCache{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/customer/7",
		strings.NewReader(`{"email":"new@x.com","password":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, repo.applied) {
		assert.Equal(t, "UPDATE customers SET email = ? WHERE id = ?", repo.applied.SQL())
		assert.Equal(t, []any{"new@x.com", uint(7)}, repo.applied.Args())
	}
}

func TestProfileUpdate_EmptyPayload(t *testing.T) {
	repo := &stubAccountRepo{rows: 1}
	r := profileRouter(repo, &recordingCache{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/customer/7",
		strings.NewReader(`{"fullName":"","email":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no_fields_provided")
	assert.Nil(t, repo.applied)
}

func TestProfileUpdate_UnknownKind(t *testing.T) {
	repo := &stubAccountRepo{rows: 1}
	r := profileRouter(repo, &recordingCache{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/admin/7",
		strings.NewReader(`{"email":"new@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_account_kind")
}

func TestProfileUpdate_TargetMissing(t *testing.T) {
	repo := &stubAccountRepo{rows: 0}
	r := profileRouter(repo, &recordingCache{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/barber/99",
		strings.NewReader(`{"bio":"new bio"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "account_not_found")
}

func TestProfileGet(t *testing.T) {
	repo := &stubAccountRepo{profile: &domain.Profile{
		ID:       7,
		Kind:     domain.KindBarber,
		FullName: "Ziad",
		Bio:      "Fades only",
	}}
	r := profileRouter(repo, &recordingCache{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/barber/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ziad"`)
}

func TestProfileUpdate_BarberInvalidatesDirectoryCache(t *testing.T) {
	repo := &stubAccountRepo{rows: 1}
	cache := &recordingCache{}
	r := profileRouter(repo, cache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/barber/2",
		strings.NewReader(`{"profileImage":"http://x/y.png"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{barbersCacheKey}, cache.invalidated)
}

func TestProfileUpdate_CustomerLeavesDirectoryCacheAlone(t *testing.T) {
	repo := &stubAccountRepo{rows: 1}
	cache := &recordingCache{}
	r := profileRouter(repo, cache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/customer/1",
		strings.NewReader(`{"email":"new@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cache.invalidated)
}

func TestProfileUpdate_FailedBarberUpdateKeepsCache(t *testing.T) {
	repo := &stubAccountRepo{rows: 0}
	cache := &recordingCache{}
	r := profileRouter(repo, cache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile/barber/99",
		strings.NewReader(`{"bio":"gone"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, cache.invalidated)
}

func TestProfileGet_NotFound(t *testing.T) {
	repo := &stubAccountRepo{}
	r := profileRouter(repo, &recordingCache{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/customer/123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
