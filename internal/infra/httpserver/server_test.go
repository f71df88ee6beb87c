package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type stubController struct{}

func (stubController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /api/things", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, []string{"a", "b"})
	})
	router.HandleFunc("POST /api/things", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := DecodeJSONBody(r, &body); err != nil {
			ReplyWithDecodeError(w, err)
			return
		}
		ReplyJSONResponse(w, http.StatusCreated, body)
	})
	router.HandleFunc("GET /api/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		_ = tp.Shutdown(context.Background())
	})

	serve := func(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	decodeMessage := func(rec *httptest.ResponseRecorder) string {
		var body ErrorResponse
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
		return body.Message
	}

	ginkgo.Context("routes", func() {
		var handler http.Handler

		ginkgo.BeforeEach(func() {
			server := NewServer(ServerConfig{}, nil, map[string]Pinger{"database": stubPinger{}}, stubController{})
			handler = server.Handler()
		})

		ginkgo.It("answers the liveness probe", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/health", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"status":"ok","message":"Server is running"}`))
		})

		ginkgo.It("reports the build on healthz", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"status":"success"`))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"version"`))
		})

		ginkgo.It("is ready when every dependency answers", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("is not ready when a dependency fails", func() {
			server := NewServer(ServerConfig{}, nil, map[string]Pinger{"database": stubPinger{err: errors.New("down")}})

			rec := serve(server.Handler(), httptest.NewRequest(http.MethodGet, "/readyz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusServiceUnavailable))
			gomega.Expect(decodeMessage(rec)).To(gomega.Equal("database unavailable"))
		})

		ginkgo.It("answers unknown routes with a JSON 404", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/nope?x=1", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(decodeMessage(rec)).To(gomega.Equal("Not Found - /nope?x=1"))
		})

		ginkgo.It("sets the security headers", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/health", nil))

			gomega.Expect(rec.Header().Get("X-Content-Type-Options")).To(gomega.Equal("nosniff"))
			gomega.Expect(rec.Header().Get("X-Frame-Options")).To(gomega.Equal("SAMEORIGIN"))
			gomega.Expect(rec.Header().Get("Strict-Transport-Security")).NotTo(gomega.BeEmpty())
		})

		ginkgo.It("turns a panic into a JSON 500", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/api/panic", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(decodeMessage(rec)).To(gomega.Equal("Internal Server Error"))
		})

		ginkgo.It("rejects bodies over the limit", func() {
			body := `{"data":"` + strings.Repeat("x", DefaultBodyLimit) + `"}`
			req := httptest.NewRequest(http.MethodPost, "/api/things", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			rec := serve(handler, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusRequestEntityTooLarge))
			gomega.Expect(decodeMessage(rec)).To(gomega.Equal("request entity too large"))
		})

		ginkgo.It("rejects oversized bodies of unknown length while reading", func() {
			body := `{"data":"` + strings.Repeat("x", DefaultBodyLimit) + `"}`
			req := httptest.NewRequest(http.MethodPost, "/api/things", strings.NewReader(body))
			req.ContentLength = -1

			rec := serve(handler, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusRequestEntityTooLarge))
		})

		ginkgo.It("rejects malformed JSON with 400", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/things", strings.NewReader(`{"data":`))

			rec := serve(handler, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(decodeMessage(rec)).To(gomega.HavePrefix("invalid JSON body"))
		})

		ginkgo.It("allows the configured CORS origins", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/things", nil)
			req.Header.Set("Origin", "http://localhost:3000")

			rec := serve(handler, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("http://localhost:3000"))
		})

		ginkgo.It("does not allow other origins", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/things", nil)
			req.Header.Set("Origin", "https://evil.example.com")

			rec := serve(handler, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.BeEmpty())
		})

		ginkgo.It("propagates a request id into the trace", func() {
			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/api/things", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			spans := recorder.Ended()
			gomega.Expect(spans).NotTo(gomega.BeEmpty())

			found := false
			for _, attr := range spans[len(spans)-1].Attributes() {
				if string(attr.Key) == "http.request_id" && attr.Value.AsString() != "" {
					found = true
				}
			}
			gomega.Expect(found).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add span to request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusAccepted)
			})

			rec := serve(createTracingMiddleware()(testHandler), httptest.NewRequest("GET", "/test", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusAccepted))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a span even when no span is in context", func() {
			span := GetSpanFromContext(httptest.NewRequest("GET", "/test", nil))
			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})
})
