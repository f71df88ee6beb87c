package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	DefaultPort      = 3001
	DefaultBodyLimit = 10 << 10

	apiPrefix = "/api"
)

var DefaultCORSOrigins = []string{
	"https://form-management-sable.vercel.app",
	"http://localhost:3000",
}

type Server interface {
	Run()
	Shutdown()
}

type ServerConfig struct {
	Port        int
	CORSOrigins []string
	BodyLimit   int64
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Only enable it behind a proxy that overwrites them.
	TrustProxy bool
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server *http.Server
}

func (s *StandardServer) Run() {
	slog.Info("http server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown", slog.String("error", err.Error()))
	}
}

// Handler exposes the full middleware stack, mainly for in-process tests.
func (s *StandardServer) Handler() http.Handler {
	return s.server.Handler
}

func NewServer(
	config ServerConfig,
	limiter RateLimiter,
	pingers map[string]Pinger,
	controllers ...Controller,
) *StandardServer {
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	if config.BodyLimit == 0 {
		config.BodyLimit = DefaultBodyLimit
	}
	if len(config.CORSOrigins) == 0 {
		config.CORSOrigins = DefaultCORSOrigins
	}

	router := http.NewServeMux()

	router.Handle("GET /health", getHealth())
	router.Handle("GET /healthz", getHealthz())
	router.Handle("GET /readyz", getReadyz(pingers))
	router.Handle("GET /metrics", promhttp.Handler())

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	router.Handle("/", notFound())

	c := cors.New(cors.Options{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	middlewares := []Middleware{middleware.RequestID}
	if config.TrustProxy {
		middlewares = append(middlewares, middleware.RealIP)
	}
	middlewares = append(middlewares,
		createRecoveryMiddleware(),
		createLoggingMiddleware(),
		MetricsMiddleware(router),
		createTracingMiddleware(),
		createSecurityHeadersMiddleware(),
		c.Handler,
		createRateLimitMiddleware(limiter, apiPrefix),
		createBodyLimitMiddleware(config.BodyLimit),
		middleware.Compress(5),
	)
	handler := chain(router, middlewares...)

	return &StandardServer{
		&http.Server{
			Addr:              fmt.Sprintf(":%d", config.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}
