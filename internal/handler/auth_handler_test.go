package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"travelo-api/internal/config"
	"travelo-api/internal/handler"
	"travelo-api/internal/middleware"
	"travelo-api/internal/model"
	"travelo-api/internal/router"
	"travelo-api/internal/service"
	"travelo-api/internal/session"
	"travelo-api/pkg/apierror"
)

type memoryUserStore struct {
	byEmail map[string]model.User
	byID    map[string]model.User
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	user, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return model.User{}, apierror.NotFound("User not found")
	}
	return user, nil
}

func (s *memoryUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return model.User{}, apierror.NotFound("User not found")
	}
	return user, nil
}

type memoryDestinationStore struct {
	byID map[string]model.Destination
}

func (s *memoryDestinationStore) List(_ context.Context, _ model.ListQuery) ([]model.Destination, error) {
	out := make([]model.Destination, 0, len(s.byID))
	for _, d := range s.byID {
		out = append(out, d)
	}
	return out, nil
}

func (s *memoryDestinationStore) FindByID(_ context.Context, id string) (model.Destination, error) {
	d, ok := s.byID[id]
	if !ok {
		return model.Destination{}, apierror.NotFound("Destination not found")
	}
	return d, nil
}

func (s *memoryDestinationStore) Create(_ context.Context, d model.Destination) error {
	s.byID[d.ID] = d
	return nil
}

func (s *memoryDestinationStore) Update(_ context.Context, d model.Destination) error {
	if _, ok := s.byID[d.ID]; !ok {
		return apierror.NotFound("Destination not found")
	}
	s.byID[d.ID] = d
	return nil
}

func (s *memoryDestinationStore) Delete(_ context.Context, id string) (model.Destination, error) {
	d, ok := s.byID[id]
	if !ok {
		return model.Destination{}, apierror.NotFound("Destination not found")
	}
	delete(s.byID, id)
	return d, nil
}

type memoryTestimonialStore struct {
	byID map[string]model.Testimonial
}

func (s *memoryTestimonialStore) List(_ context.Context, _ model.ListQuery) ([]model.Testimonial, error) {
	out := make([]model.Testimonial, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *memoryTestimonialStore) FindByID(_ context.Context, id string) (model.Testimonial, error) {
	item, ok := s.byID[id]
	if !ok {
		return model.Testimonial{}, apierror.NotFound("Testimonial not found")
	}
	return item, nil
}

func (s *memoryTestimonialStore) Create(_ context.Context, item model.Testimonial) error {
	s.byID[item.ID] = item
	return nil
}

func (s *memoryTestimonialStore) Update(_ context.Context, item model.Testimonial) error {
	if _, ok := s.byID[item.ID]; !ok {
		return apierror.NotFound("Testimonial not found")
	}
	s.byID[item.ID] = item
	return nil
}

func (s *memoryTestimonialStore) Delete(_ context.Context, id string) (model.Testimonial, error) {
	item, ok := s.byID[id]
	if !ok {
		return model.Testimonial{}, apierror.NotFound("Testimonial not found")
	}
	delete(s.byID, id)
	return item, nil
}

type testEnv struct {
	router http.Handler
	users  *memoryUserStore
	auth   *service.AuthService
}

// newTestEnv wires the full router over in-memory stores, seeded with one
// admin account.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	webRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(webRoot, "index.html"), []byte("<!doctype html><title>Travelo</title>"), 0o644))

	cfg := &config.Config{
		Env:              "test",
		SessionSecret:    "test-secret",
		SessionTTL:       time.Hour,
		BcryptCost:       4,
		RequestTimeout:   5 * time.Second,
		RateLimitRPM:     10000,
		AuthRateLimitRPM: 10000,
		UploadRoot:       t.TempDir(),
		MaxUploadSize:    5 * 1024 * 1024,
		WebRoot:          webRoot,
	}

	users := &memoryUserStore{byEmail: map[string]model.User{}, byID: map[string]model.User{}}
	authService, err := service.NewAuthService(cfg.SessionSecret, cfg.SessionTTL, cfg.BcryptCost, users)
	require.NoError(t, err)

	digest, err := authService.HashPassword("Admin@123456")
	require.NoError(t, err)
	admin := model.User{ID: "admin-1", Email: "admin@travelo.local", Name: "Admin", Role: "admin", PasswordHash: digest}
	users.byEmail[admin.Email] = admin
	users.byID[admin.ID] = admin

	uploadService, err := service.NewUploadService(cfg.UploadRoot)
	require.NoError(t, err)

	cookies := session.NewCookieManager(cfg.SessionTTL, false)
	authMiddleware := middleware.NewAuthMiddleware(authService, cookies)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cookies),
		Destinations: handler.NewDestinationHandler(service.NewDestinationService(&memoryDestinationStore{byID: map[string]model.Destination{}})),
		Testimonials: handler.NewTestimonialHandler(service.NewTestimonialService(&memoryTestimonialStore{byID: map[string]model.Testimonial{}})),
		Upload:       handler.NewUploadHandler(uploadService, cfg.MaxUploadSize),
		Pages:        handler.NewPageHandler(cfg.WebRoot),
	}

	return &testEnv{
		router: router.New(cfg, authMiddleware, handlers),
		users:  users,
		auth:   authService,
	}
}

func (env *testEnv) do(method string, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@travelo.local",
		"password": "Admin@123456",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var envelope model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestLoginSetsCookieAndReturnsUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@travelo.local",
		"password": "Admin@123456",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, strings.ToLower(rec.Body.String()), "password")

	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)

	cookie := env.login(t)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)
	require.Positive(t, cookie.MaxAge)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@travelo.local",
		"password": "NotThePassword",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies(), "failed login must not set a cookie")

	envelope := decodeEnvelope(t, rec)
	require.False(t, envelope.Success)
	require.Equal(t, "Invalid credentials", envelope.Error)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginShortPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@travelo.local",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/auth/me", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.False(t, envelope.Success)
	require.Equal(t, "Unauthorized", envelope.Error)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(http.MethodGet, "/api/auth/me", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "admin@travelo.local")
	require.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestMeAfterUserRemoved(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	// The token stays valid, but the account behind it is gone.
	delete(env.users.byID, "admin-1")

	rec := env.do(http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}

func TestLogoutThenMeIsUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rec := env.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// A client that honors the cleared cookie stops sending it.
	cleared := rec.Result().Cookies()[0]
	require.Negative(t, cleared.MaxAge)

	rec = env.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutWithoutSessionStillSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDestinationWritesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	input := map[string]any{
		"name":     "Paris",
		"location": "France",
		"image":    "https://example.com/paris.jpg",
		"rating":   4.8,
		"price":    1299,
	}

	rec := env.do(http.MethodPost, "/api/destinations/", input)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := env.login(t)
	rec = env.do(http.MethodPost, "/api/destinations/", input, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)
}

func TestDestinationListIsPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/destinations/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeEnvelope(t, rec).Success)
}

func TestUploadRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/upload", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardPageRedirectsAnonymousVisitors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	cookie := env.login(t)
	rec = env.do(http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
}
