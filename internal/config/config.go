package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMySQL    = "mysql"

	PaymentProviderStripe      = "stripe"
	PaymentProviderMercadoPago = "mercadopago"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Sender   string
}

type AdminConfig struct {
	Username      string
	Password      string
	PasswordHash  string
	SessionSecret string
	SessionTTL    time.Duration
}

type PaymentConfig struct {
	Provider         string
	Currency         string
	StripeSecretKey  string
	MercadoPagoToken string
	Mock             bool
}

type AssistantConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config centralises all environment and runtime configuration.
type Config struct {
	Port               string
	BaseURL            string
	Timezone           string
	CORSAllowedOrigins []string
	LogLevel           string
	LogPretty          bool

	StoreDriver      string
	DatabaseDSN      string
	AWSRegion        string
	DynamoDBEndpoint string
	EstimatesTable   string
	CustomersTable   string

	SMTP                   SMTPConfig
	AdminNotificationEmail string
	Admin                  AdminConfig
	Payment                PaymentConfig
	Assistant              AssistantConfig
}

// Load builds the Config from the process environment. Missing optional
// integrations are left empty; their constructors decide how to degrade.
func Load() *Config {
	cfg := &Config{
		Port:               getenvDefault("PORT", "8080"),
		BaseURL:            strings.TrimRight(getenvDefault("BASE_URL", "http://localhost:3000"), "/"),
		Timezone:           getenvDefault("APP_TIMEZONE", "UTC"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		LogPretty:          parseBoolEnv(os.Getenv("LOG_PRETTY")),

		StoreDriver:      strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		EstimatesTable:   getenvDefault("ESTIMATES_TABLE", "estimates"),
		CustomersTable:   getenvDefault("CUSTOMERS_TABLE", "customers"),

		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			Sender:   os.Getenv("SMTP_SENDER"),
		},
		AdminNotificationEmail: os.Getenv("ADMIN_NOTIFICATION_EMAIL"),
		Admin: AdminConfig{
			Username:      os.Getenv("ADMIN_USERNAME"),
			Password:      os.Getenv("ADMIN_PASSWORD"),
			PasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
			SessionSecret: os.Getenv("ADMIN_SESSION_SECRET"),
			SessionTTL:    getenvDuration("ADMIN_SESSION_TTL", 24*time.Hour),
		},
		Payment: PaymentConfig{
			Provider:         strings.ToLower(getenvDefault("PAYMENT_PROVIDER", PaymentProviderStripe)),
			Currency:         strings.ToLower(getenvDefault("PAYMENT_CURRENCY", "usd")),
			StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
			MercadoPagoToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:             parseBoolEnv(os.Getenv("PAYMENT_GATEWAY_MOCK")) || parseBoolEnv(os.Getenv("MERCADOPAGO_MOCK")),
		},
		Assistant: AssistantConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
	}

	if cfg.SMTP.Sender == "" {
		cfg.SMTP.Sender = cfg.SMTP.User
	}
	if cfg.Admin.SessionSecret == "" {
		log.Warn().Msg("[config] ADMIN_SESSION_SECRET not set; admin sessions cannot be issued")
	}

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Str("payment_provider", cfg.Payment.Provider).
		Bool("payment_mock", cfg.Payment.Mock).
		Str("timezone", cfg.Timezone).
		Msg("[config] loaded")
	return cfg
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", c.Timezone).Msg("[config] invalid APP_TIMEZONE, using UTC")
		return time.UTC
	}
	return loc
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on", "mock":
		return true
	default:
		return false
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
