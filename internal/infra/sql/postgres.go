package sql

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_retryInterval = 2 * time.Second
	maxRetries     = 10
)

func NewPostgresORM(dsn string, timeout time.Duration) (*DB, error) {
	if pass, ok := os.LookupEnv("FORM_SERVER_POSTGRES_PASSWORD"); ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              timeout,
		dialect:              "postgresql",
	}, nil
}

type PostgresDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var _ Database = (*PostgresDatabase)(nil)

func NewPostgresDatabase(url string) *PostgresDatabase {
	return &PostgresDatabase{url: url}
}

// Open blocks until the server answers a ping or the retries run out.
func (d *PostgresDatabase) Open(ctx context.Context) error {
	var lastErr error
	for attempt := range maxRetries {
		conn, err := pgxpool.New(ctx, d.url)
		if err == nil {
			if err = conn.Ping(ctx); err == nil {
				d.Conn = conn
				return nil
			}
			conn.Close()
		}
		lastErr = err
		slog.Warn("database not ready", slog.Int("attempt", attempt+1), slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(_retryInterval):
		}
	}

	return fmt.Errorf("impossible to connect to database after %d retries: %w", maxRetries, lastErr)
}

func (d *PostgresDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

func (d *PostgresDatabase) Ping(ctx context.Context) error {
	if d.Conn == nil {
		return fmt.Errorf("database not opened")
	}
	return d.Conn.Ping(ctx)
}
