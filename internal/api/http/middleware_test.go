package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/soundwave/internal/observability"
	apperrors "github.com/spec-kit/soundwave/pkg/util"
)

func newObservedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs, *observability.Metrics) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), metrics, 0)
	return app, logs, metrics
}

func requestLogEntry(t *testing.T, logs *observer.ObservedLogs) map[string]any {
	t.Helper()
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	return entries[0].ContextMap()
}

func TestRequestLoggerRecordsSuccessStatus(t *testing.T) {
	app, logs, metrics := newObservedApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, int64(http.StatusCreated), requestLogEntry(t, logs)["status"])
	assert.Equal(t, int64(1), metrics.RequestCount("/ok", http.MethodGet, http.StatusCreated))
}

func TestRequestLoggerRecordsErrorStatus(t *testing.T) {
	app, logs, metrics := newObservedApp(t)
	app.Post("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewInvalidCredentials()
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/fail", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	entry := requestLogEntry(t, logs)
	assert.Equal(t, int64(http.StatusUnauthorized), entry["status"])
	assert.Equal(t, "/fail", entry["path"])
	assert.Equal(t, int64(1), metrics.RequestCount("/fail", http.MethodPost, http.StatusUnauthorized))
	assert.Equal(t, int64(1), metrics.ErrorCount("/fail", http.MethodPost, "INVALID_CREDENTIALS"))
	assert.Zero(t, metrics.RequestCount("/fail", http.MethodPost, http.StatusOK))
}

func TestErrorMiddlewareRendersFlatEnvelope(t *testing.T) {
	app, _, _ := newObservedApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
}
