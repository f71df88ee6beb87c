package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"form-server/internal/infra/node"

	"go.opentelemetry.io/otel/attribute"
)

const readinessTimeout = 2 * time.Second

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthzResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
}

func getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Message: "Server is running",
		})
	}
}

func getHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "healthz"))

		info := node.GetNodeInfo()
		ReplyJSONResponse(w, http.StatusOK, HealthzResponse{
			Status:     "success",
			Version:    info.Version,
			CommitHash: info.CommitHash,
		})
	}
}

func getReadyz(pingers map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for name, pinger := range pingers {
			if pinger == nil {
				continue
			}
			if err := pinger.Ping(ctx); err != nil {
				slog.Warn("readiness check failed", slog.String("dependency", name), slog.String("error", err.Error()))
				ReplyWithError(w, http.StatusServiceUnavailable, fmt.Sprintf("%s unavailable", name))
				return
			}
		}

		ReplyJSONResponse(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ReplyWithError(w, http.StatusNotFound, "Not Found - "+r.URL.RequestURI())
	}
}
