package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	h := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestObserveHelpers(t *testing.T) {
	// Out-of-range values must be dropped, not panic.
	ObserveAnalysis(150, -1)
	ObserveAnalysis(87, 92)
	ObservePDFRender("ok", 120*time.Millisecond)
	ObservePDFRender("error", 0)
}
