package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricPrefix  = "form_server"
	unmatchedRoute = "unmatched"
)

// routeResolver reports the pattern that would serve a request.
// *http.ServeMux satisfies it.
type routeResolver interface {
	Handler(r *http.Request) (http.Handler, string)
}

type requestMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newRequestMetrics(meter metric.Meter) (*requestMetrics, error) {
	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s.%s", _metricPrefix, "http.request.duration.seconds"),
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		fmt.Sprintf("%s.%s", _metricPrefix, "http.requests.total"),
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s.%s", _metricPrefix, "http.requests.active"),
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, err
	}

	return &requestMetrics{duration: duration, total: total, active: active}, nil
}

// MetricsMiddleware measures requests per method and route pattern. Paths
// the router does not know share the "unmatched" series, so neither form
// ids nor scanner noise grow the label set.
func MetricsMiddleware(routes routeResolver) Middleware {
	metrics, err := newRequestMetrics(otel.GetMeterProvider().Meter("form-server"))
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := routeOf(routes, r)
			inFlight := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
			)

			metrics.active.Add(r.Context(), 1, inFlight)
			defer metrics.active.Add(r.Context(), -1, inFlight)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			completed := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.Int("http.status_code", wrappedWriter.statusCode),
			)
			metrics.duration.Record(r.Context(), time.Since(start).Seconds(), completed)
			metrics.total.Add(r.Context(), 1, completed)
		})
	}
}

// routeOf returns the path part of the matching pattern: "GET /api/forms/{id}"
// becomes "/api/forms/{id}". The catch-all counts as unmatched.
func routeOf(routes routeResolver, r *http.Request) string {
	if routes == nil {
		return unmatchedRoute
	}

	_, pattern := routes.Handler(r)
	if _, path, found := strings.Cut(pattern, " "); found {
		pattern = path
	}
	if pattern == "" || pattern == "/" {
		return unmatchedRoute
	}
	return pattern
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
