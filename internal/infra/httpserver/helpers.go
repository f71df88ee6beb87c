package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

var ErrRequestTooLarge = errors.New("request entity too large")

type ErrorResponse struct {
	Message string `json:"message"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg})
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrRequestTooLarge
		}
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	return nil
}

// ReplyWithDecodeError answers a failed DecodeJSONBody: 413 for an
// oversized body, 400 otherwise.
func ReplyWithDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrRequestTooLarge) {
		ReplyWithError(w, http.StatusRequestEntityTooLarge, ErrRequestTooLarge.Error())
		return
	}
	ReplyWithError(w, http.StatusBadRequest, err.Error())
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
