package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of AI requests by provider and operation",
		},
		[]string{"provider", "operation"},
	)
	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "AI request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider", "operation"},
	)

	AnalysesCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyses_completed_total",
			Help: "Total number of completed test analyses",
		},
	)
	PDFRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_renders_total",
			Help: "Total number of CV PDF renders by outcome",
		},
		[]string{"outcome"},
	)
	PDFRenderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pdf_render_duration_seconds",
			Help:    "CV PDF render duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// Match-quality distributions from completed analyses.
	TopMatchScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_top_match_score",
			Help:    "Distribution of the best career match percentage ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	ConfidenceHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_confidence",
			Help:    "Distribution of analysis confidence ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AIRequestsTotal)
	prometheus.MustRegister(AIRequestDuration)
	prometheus.MustRegister(AnalysesCompletedTotal)
	prometheus.MustRegister(PDFRendersTotal)
	prometheus.MustRegister(PDFRenderDuration)
	prometheus.MustRegister(TopMatchScoreHistogram)
	prometheus.MustRegister(ConfidenceHistogram)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

// ObserveAnalysis records the outcome of a completed analysis.
func ObserveAnalysis(topMatchPercent int, confidence int) {
	AnalysesCompletedTotal.Inc()
	if topMatchPercent >= 0 && topMatchPercent <= 100 {
		TopMatchScoreHistogram.Observe(float64(topMatchPercent))
	}
	if confidence >= 0 && confidence <= 100 {
		ConfidenceHistogram.Observe(float64(confidence))
	}
}

// ObservePDFRender records a single CV render attempt.
func ObservePDFRender(outcome string, dur time.Duration) {
	PDFRendersTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		PDFRenderDuration.Observe(dur.Seconds())
	}
}
