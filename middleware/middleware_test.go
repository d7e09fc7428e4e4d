package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/krishkalaria12/plantdoc-serve/logger"
	"github.com/krishkalaria12/plantdoc-serve/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, buf *bytes.Buffer) (*fiber.App, *metrics.Metrics) {
	t.Helper()

	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	app := fiber.New()
	app.Use(RequestID(), Metrics(m), RequestLogger(logger.New("debug", logger.FormatJSON, buf)), recover.New())

	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })

	return app, m
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRequestLoggerAndID(t *testing.T) {
	var buf bytes.Buffer
	app, m := newTestApp(t, &buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	id := resp.Header.Get(fiber.HeaderXRequestID)
	assert.Len(t, id, 36)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/ok", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, id, entry["request_id"])

	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/ok", "200")), 0)
}

func TestRequestLoggerHandlesErrors(t *testing.T) {
	var buf bytes.Buffer
	app, m := newTestApp(t, &buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, 500, entry["status"])
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/fail", "500")), 0)
}

func TestPanicBecomes500(t *testing.T) {
	var buf bytes.Buffer
	app, _ := newTestApp(t, &buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestUnmatchedRouteLabel(t *testing.T) {
	var buf bytes.Buffer
	app, m := newTestApp(t, &buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")), 0)
}
