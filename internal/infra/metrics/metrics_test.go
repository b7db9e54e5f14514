package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/ads/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/ads/1", "/ads/2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/ads/:id", "200")))
}

func TestObserveImageOperation(t *testing.T) {
	m := New()

	m.ObserveImageOperation("save", "ads", 128, nil)
	m.ObserveImageOperation("save", "ads", 0, errors.New("disk full"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.imageOperations.WithLabelValues("save", "ads", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.imageOperations.WithLabelValues("save", "ads", "error")))
	assert.Equal(t, 128.0, testutil.ToFloat64(m.imageBytes.WithLabelValues("save")))

	var missing *Metrics
	assert.NotPanics(t, func() { missing.ObserveImageOperation("load", "users", 1, nil) })
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ObserveImageOperation("load", "users", 10, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "adboard_image_operations_total")
}

func TestMiddleware_RecordsErrorStatus(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/ads/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ads/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/ads/:id", "404")))
}
