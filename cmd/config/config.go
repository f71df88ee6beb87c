package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvironmentLocal = "local"

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads the process configuration once. A broken configuration
// stops the process.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		cfg, err := Load(os.Args[1:])
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

// Load resolves flags, the .env file, environment variables and server.yaml,
// in that order of precedence.
func Load(args []string) (AppConfig, error) {
	flags := pflag.NewFlagSet("form-server", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	configPath := flags.String("config-path", "", "extra directory searched for server.yaml")
	envFile := flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.Int("port", 3001, "HTTP listen port")
	if err := flags.Parse(args); err != nil {
		return AppConfig{}, fmt.Errorf("parsing flags: %w", err)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("loading %s: %w", *envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("form_server")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("general.environment", "ENV")
	_ = v.BindEnv("http.port", "FORM_SERVER_HTTP_PORT", "PORT")
	if err := v.BindPFlag("http.port", flags.Lookup("port")); err != nil {
		return AppConfig{}, fmt.Errorf("binding port flag: %w", err)
	}

	v.SetConfigName("server")
	v.SetConfigType("yaml")
	if *configPath != "" {
		v.AddConfigPath(*configPath)
	}
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Environment: v.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Port:        v.GetInt("http.port"),
			CORSOrigins: splitList(v.GetStringSlice("http.cors_origins")),
			BodyLimit:   v.GetInt64("http.body_limit"),
			TrustProxy:  v.GetBool("http.trust_proxy"),
		},
		Postgresql: PostgresqlConfig{
			URL:     v.GetString("database.url"),
			DSN:     v.GetString("database.dsn"),
			Timeout: v.GetDuration("database.timeout"),
		},
		RateLimit: RateLimitConfig{
			Window: v.GetDuration("rate_limit.window"),
			Max:    v.GetInt("rate_limit.max"),
			Store:  v.GetString("rate_limit.store"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Kafka: KafkaConfig{
			Brokers:        splitList(v.GetStringSlice("kafka.brokers")),
			Group:          v.GetString("kafka.group"),
			SchemaRegistry: v.GetString("kafka.schema_registry"),
		},
		Otel: OtelConfig{
			Endpoint: v.GetString("otel.endpoint"),
			Enabled:  v.GetBool("otel.enabled"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.environment", "production")
	v.SetDefault("http.port", 3001)
	v.SetDefault("http.cors_origins", []string{
		"https://form-management-sable.vercel.app",
		"http://localhost:3000",
	})
	v.SetDefault("http.body_limit", 10<<10)
	v.SetDefault("http.trust_proxy", false)
	v.SetDefault("database.timeout", 5*time.Second)
	v.SetDefault("rate_limit.window", 15*time.Minute)
	v.SetDefault("rate_limit.max", 100)
	v.SetDefault("rate_limit.store", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{"localhost:19092"})
	v.SetDefault("kafka.group", "form-server")
	v.SetDefault("otel.endpoint", "localhost:4317")
	v.SetDefault("otel.enabled", true)
}

// splitList accepts both yaml lists and comma separated environment values.
func splitList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				result = append(result, item)
			}
		}
	}
	return result
}

func (c AppConfig) IsLocal() bool {
	return c.General.Environment == EnvironmentLocal
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Postgresql PostgresqlConfig
	RateLimit  RateLimitConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Otel       OtelConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

type HTTPConfig struct {
	Port        int
	CORSOrigins []string
	BodyLimit   int64
	TrustProxy  bool
}

type PostgresqlConfig struct {
	URL     string
	DSN     string
	Timeout time.Duration
}

type RateLimitConfig struct {
	Window time.Duration
	Max    int
	Store  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type OtelConfig struct {
	Endpoint string
	Enabled  bool
}
