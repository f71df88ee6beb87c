package httpserver

import (
	"context"
	"net/http"
)

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
