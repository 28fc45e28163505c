package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	xcurrency "golang.org/x/text/currency"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string
	MigrationsURL string

	RedisURL     string
	RateCacheTTL time.Duration
	// DevicePreferenceTTL bounds how long an anonymous device's preference is kept.
	DevicePreferenceTTL time.Duration

	// BaseCurrency is the marketplace currency every listing price is stored in.
	BaseCurrency              string
	CustomerCommissionPercent decimal.Decimal
	ProviderCommissionPercent decimal.Decimal

	RateRefreshCron string
	RateLimit       string // ulule/limiter format, e.g. "120-M"

	CORSAllowedOrigins []string
	MetricsNamespace   string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_URL", "file://migrations")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("RATE_CACHE_TTL", "1h")
	v.SetDefault("DEVICE_PREFERENCE_TTL", "720h")
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("CUSTOMER_COMMISSION_PERCENT", "0")
	v.SetDefault("PROVIDER_COMMISSION_PERCENT", "0")
	v.SetDefault("RATE_REFRESH_CRON", "@every 15m")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("METRICS_NAMESPACE", "storefront")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		MigrationsURL:    v.GetString("MIGRATIONS_URL"),
		RedisURL:         v.GetString("REDIS_URL"),
		RateRefreshCron:  v.GetString("RATE_REFRESH_CRON"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		MetricsNamespace: v.GetString("METRICS_NAMESPACE"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	var err error
	if cfg.RateCacheTTL, err = parseDuration(v, "RATE_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.DevicePreferenceTTL, err = parseDuration(v, "DEVICE_PREFERENCE_TTL"); err != nil {
		return nil, err
	}

	base := strings.ToUpper(strings.TrimSpace(v.GetString("BASE_CURRENCY")))
	if _, err := xcurrency.ParseISO(base); err != nil {
		return nil, fmt.Errorf("BASE_CURRENCY %q is not an ISO 4217 code: %w", base, err)
	}
	cfg.BaseCurrency = base

	if cfg.CustomerCommissionPercent, err = parsePercent(v, "CUSTOMER_COMMISSION_PERCENT"); err != nil {
		return nil, err
	}
	if cfg.ProviderCommissionPercent, err = parsePercent(v, "PROVIDER_COMMISSION_PERCENT"); err != nil {
		return nil, err
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.IsProduction && cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics events will not be sent.")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid value for %s (%q): must be a positive duration", key, raw)
	}
	return d, nil
}

func parsePercent(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := v.GetString(key)
	p, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("invalid value for %s (%q): must be between 0 and 100", key, raw)
	}
	return p, nil
}
