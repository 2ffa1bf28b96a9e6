package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(m *Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/companies/{code}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "code") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New()
	router := newRouter(m)

	for _, path := range []string{"/companies/apple", "/companies/ibm", "/companies/missing"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.httpRequests.WithLabelValues("GET", "/companies/{code}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequests.WithLabelValues("GET", "/companies/{code}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	m := New()
	router := newRouter(m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere/at/all", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequests.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestHandleEventCountsByType(t *testing.T) {
	m := New()

	for _, typ := range []string{events.CompanyCreated, events.CompanyCreated, events.InvoiceDeleted} {
		event, err := events.NewEntityEvent(typ, "x", "k", nil)
		require.NoError(t, err)
		require.NoError(t, m.HandleEvent(context.Background(), event))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.eventsEmitted.WithLabelValues(events.CompanyCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsEmitted.WithLabelValues(events.InvoiceDeleted)))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	router := newRouter(m)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/companies/apple", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "biztime_http_requests_total"))
	assert.Contains(t, body, `route="/companies/{code}"`)
}
