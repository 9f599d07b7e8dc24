package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/telemetry"

	"github.com/robfig/cron/v3"
)

const (
	defaultHTTPPort                   = "8080"
	defaultDBPort                     = "5432"
	defaultDBSslMode                  = "disable"
	defaultFanOutRetrySchedule        = "*/30 * * * * *"
	defaultFanOutRetryBatch           = 50
	defaultNotificationExpirySchedule = "0 * * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel slog.Level

	FanOutLimit            int
	TxRetryAttempts        int
	TxRetryInitialInterval time.Duration

	FanOutRetrySchedule string
	FanOutRetryBatch    int

	// NotificationTTL of zero leaves notifications Pending until the order resolves.
	NotificationTTL            time.Duration
	NotificationExpirySchedule string

	OTELTracesStdout bool
}

// EnvLookup matches os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// LoadConfig reads the environment, applies defaults and reports every
// invalid value at once.
func LoadConfig(lookup EnvLookup) (Config, error) {
	env := envReader{lookup: lookup}

	cfg := Config{
		HTTPPort:                   env.str("HTTP_PORT", defaultHTTPPort),
		DBHost:                     env.str("DB_HOST", ""),
		DBPort:                     env.str("DB_PORT", defaultDBPort),
		DBUser:                     env.str("DB_USER", ""),
		DBPassword:                 env.str("DB_PASSWORD", ""),
		DBName:                     env.str("DB_NAME", ""),
		DBSslMode:                  env.str("DB_SSLMODE", defaultDBSslMode),
		FanOutLimit:                env.positiveInt("FANOUT_LIMIT", services.DefaultFanOutLimit),
		TxRetryAttempts:            env.positiveInt("TX_RETRY_ATTEMPTS", commands.DefaultRetryAttempts),
		TxRetryInitialInterval:     env.duration("TX_RETRY_INITIAL_INTERVAL", commands.DefaultRetryInitialInterval),
		FanOutRetrySchedule:        env.schedule("FANOUT_RETRY_SCHEDULE", defaultFanOutRetrySchedule),
		FanOutRetryBatch:           env.positiveInt("FANOUT_RETRY_BATCH", defaultFanOutRetryBatch),
		NotificationTTL:            env.duration("NOTIFICATION_TTL", 0),
		NotificationExpirySchedule: env.schedule("NOTIFICATION_EXPIRY_SCHEDULE", defaultNotificationExpirySchedule),
		OTELTracesStdout:           env.boolean("OTEL_TRACES_STDOUT"),
	}

	level, err := telemetry.ParseLevel(env.str("LOG_LEVEL", ""))
	if err != nil {
		env.fail("LOG_LEVEL", err)
	}
	cfg.LogLevel = level

	if cfg.DBHost == "" {
		env.fail("DB_HOST", errors.New("must be set"))
	}
	if cfg.DBName == "" {
		env.fail("DB_NAME", errors.New("must be set"))
	}

	if err = errors.Join(env.errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) RetryPolicy() commands.RetryPolicy {
	return commands.RetryPolicy{
		MaxAttempts:     c.TxRetryAttempts,
		InitialInterval: c.TxRetryInitialInterval,
	}
}

var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type envReader struct {
	lookup EnvLookup
	errs   []error
}

func (r *envReader) fail(key string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
}

func (r *envReader) str(key, fallback string) string {
	if v, ok := r.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (r *envReader) positiveInt(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(key, fmt.Errorf("%q is not an integer", raw))
		return fallback
	}
	if n <= 0 {
		r.fail(key, fmt.Errorf("%d must be greater than 0", n))
		return fallback
	}
	return n
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(key, fmt.Errorf("%q is not a duration", raw))
		return fallback
	}
	if d < 0 {
		r.fail(key, fmt.Errorf("%s must not be negative", d))
		return fallback
	}
	return d
}

func (r *envReader) schedule(key, fallback string) string {
	expr := r.str(key, fallback)
	if _, err := scheduleParser.Parse(expr); err != nil {
		r.fail(key, fmt.Errorf("%q is not a cron schedule: %w", expr, err))
		return fallback
	}
	return expr
}

func (r *envReader) boolean(key string) bool {
	switch strings.ToLower(r.str(key, "")) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
