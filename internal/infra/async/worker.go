package async

import "context"

// Worker is a long running background task. Run must call done when it
// returns.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
