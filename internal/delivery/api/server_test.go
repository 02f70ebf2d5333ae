package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizarra/config"
	"pizarra/internal/delivery/api/router"
	"pizarra/internal/delivery/api/router/handler"
	"pizarra/internal/delivery/api/web"
	deliverycontext "pizarra/internal/delivery/context"
	"pizarra/internal/infra/auth"
	"pizarra/internal/infra/metrics"
	"pizarra/internal/infra/persistence/memory"
	"pizarra/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder()

	uc := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo: memory.NewAccountRepository(),
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Metrics:     recorder,
		Logger:      logger,
	})

	e := NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(uc),
		PageHandler:    handler.NewPageHandler(web.Pages()),
		Metrics:        recorder,
		Config:         cfg,
	}).RegisterRoutes(e)

	return e
}

func do(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_RegisterAndLoginScenario(t *testing.T) {
	e := newTestServer(t)

	steps := []struct {
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"/api/register", `{"username":"alice","password":"secret1"}`, http.StatusOK, `{"success":true,"message":"Registration successful"}`},
		{"/api/register", `{"username":"alice","password":"secret2"}`, http.StatusBadRequest, `{"success":false,"message":"Username already exists"}`},
		{"/api/login", `{"username":"alice","password":"secret1"}`, http.StatusOK, `{"success":true,"message":"Login successful"}`},
		{"/api/login", `{"username":"alice","password":"wrong"}`, http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`},
		{"/api/login", `{"username":"nobody","password":"secret1"}`, http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`},
		{"/api/register", `{"username":"al","password":"secret1"}`, http.StatusBadRequest, `{"success":false,"message":"Username must be at least 3 characters"}`},
		{"/api/register", `{"username":"bob","password":"12345"}`, http.StatusBadRequest, `{"success":false,"message":"Password must be at least 6 characters"}`},
	}

	for _, step := range steps {
		rec := do(e, http.MethodPost, step.path, step.body, nil)

		assert.Equal(t, step.wantStatus, rec.Code, step.body)
		assert.JSONEq(t, step.wantBody, rec.Body.String(), step.body)
	}
}

func TestServer_Pages(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/", "/login"} {
		rec := do(e, http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html", path)
		assert.Contains(t, rec.Body.String(), "<form", path)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Service is healthy"}`, rec.Body.String())

	do(e, http.MethodPost, "/api/login", `{"username":"ghost","password":"secret1"}`, nil)

	rec = do(e, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pizarra_credential_operations_total{operation="verify",result="invalid_credentials"} 1`)
}

func TestServer_RequestIDAndCORS(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/login", `{"username":"ghost","password":"secret1"}`, map[string]string{
		deliverycontext.HeaderXRequestID: "req-42",
		echo.HeaderOrigin:                "https://shop.example",
	})
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = do(e, http.MethodGet, "/health", "", map[string]string{echo.HeaderOrigin: "https://shop.example"})
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_ErrorResponses(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Not Found"}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/register", `{"username":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid request body"}`, rec.Body.String())

	oversized := `{"username":"alice","password":"` + strings.Repeat("x", 2048) + `"}`
	rec = do(e, http.MethodPost, "/api/register", oversized, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
