package wire

import (
	"context"
	"sync"

	"form-server/cmd/config"
	"form-server/internal/forms/httpapi"
	"form-server/internal/infra/cache"
	"form-server/internal/infra/httpserver"
	"form-server/internal/infra/pubsub"
	"form-server/internal/infra/sql"
)

const consumerGroupFallback = "form-server"

var (
	databaseOnce     sync.Once
	databaseInstance *sql.DB
	databaseErr      error
	postgresInstance *sql.PostgresDatabase

	pubSubOnce     sync.Once
	pubSubInstance *pubsub.Factory

	redisOnce     sync.Once
	redisInstance *cache.RedisClient
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideServerConfig(cfg config.AppConfig) httpserver.ServerConfig {
	return httpserver.ServerConfig{
		Port:        cfg.HTTP.Port,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		BodyLimit:   cfg.HTTP.BodyLimit,
		TrustProxy:  cfg.HTTP.TrustProxy,
	}
}

// provideDatabase opens the store once per process; every injector shares it.
func provideDatabase(cfg config.AppConfig) (*sql.DB, error) {
	databaseOnce.Do(func() {
		databaseInstance, databaseErr = openDatabase(cfg)
	})
	return databaseInstance, databaseErr
}

func openDatabase(cfg config.AppConfig) (*sql.DB, error) {
	if cfg.IsLocal() {
		return sql.NewMemoryORM("forms")
	}

	// wait for postgres before handing the dsn to gorm
	db := sql.NewPostgresDatabase(cfg.Postgresql.URL)
	if err := db.Open(context.Background()); err != nil {
		return nil, err
	}
	postgresInstance = db

	return sql.NewPostgresORM(cfg.Postgresql.DSN, cfg.Postgresql.Timeout)
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubSubOnce.Do(func() {
		group := cfg.Kafka.Group
		if group == "" {
			group = consumerGroupFallback
		}

		pubSubInstance = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       cfg.General.Environment,
			KafkaBrokers:      cfg.Kafka.Brokers,
			ConsumerGroup:     group,
			SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
		})
	})
	return pubSubInstance
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

func provideRedisClient(cfg config.AppConfig) *cache.RedisClient {
	redisOnce.Do(func() {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB
		redisInstance = cache.NewRedisClient(redisConfig)
	})
	return redisInstance
}

func provideRateLimiter(cfg config.AppConfig) httpserver.RateLimiter {
	limits := httpserver.RateLimitConfig{
		Window: cfg.RateLimit.Window,
		Max:    cfg.RateLimit.Max,
	}

	if cfg.RateLimit.Store == httpserver.RateLimitStoreRedis {
		return httpserver.NewRedisRateLimiter(limits, provideRedisClient(cfg))
	}

	return httpserver.NewMemoryRateLimiter(limits)
}

func provideReadinessCheckers(cfg config.AppConfig, db *sql.DB) map[string]httpserver.Pinger {
	checkers := map[string]httpserver.Pinger{
		"database": db,
	}

	if postgresInstance != nil {
		checkers["postgres"] = postgresInstance
	}

	if cfg.RateLimit.Store == httpserver.RateLimitStoreRedis {
		checkers["redis"] = cache.NewRedisCounter(provideRedisClient(cfg), "")
	}

	return checkers
}

func provideControllers(forms *httpapi.FormController) []httpserver.Controller {
	return []httpserver.Controller{forms}
}
