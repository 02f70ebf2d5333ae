package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizarra/config"
	deliverycontext "pizarra/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		echoed   bool
	}{
		{name: "echoes client id", incoming: "abc-123", echoed: true},
		{name: "generates when missing"},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "replaces id with spaces", incoming: "abc 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			if tt.echoed {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	for _, debug := range []bool{false, true} {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"password":"secret1"}`))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusUnauthorized)
		})(c)
		require.NoError(t, err)

		if !debug {
			assert.Empty(t, buf.String())

			continue
		}
		assert.Contains(t, buf.String(), `"uri":"/api/login"`)
		assert.Contains(t, buf.String(), `"status":401`)
		assert.NotContains(t, buf.String(), "secret1")
	}
}
