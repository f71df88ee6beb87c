package sql

import "context"

// Database is a raw connection used outside the ORM, for start-up probing.
type Database interface {
	Open(ctx context.Context) error
	Close()
	Ping(ctx context.Context) error
}
