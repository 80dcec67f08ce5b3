package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "BASE_URL", "STORE_DRIVER", "PAYMENT_PROVIDER", "ADMIN_SESSION_TTL", "SMTP_PORT", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
			t.Setenv(k, "")
		}

		cfg := Load()
		if cfg.Port != "8080" {
			t.Fatalf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.StoreDriver != StoreDynamoDB {
			t.Fatalf("expected dynamodb store, got %s", cfg.StoreDriver)
		}
		if cfg.Payment.Provider != PaymentProviderStripe {
			t.Fatalf("expected stripe provider, got %s", cfg.Payment.Provider)
		}
		if cfg.Admin.SessionTTL != 24*time.Hour {
			t.Fatalf("expected 24h ttl, got %s", cfg.Admin.SessionTTL)
		}
		if cfg.SMTP.Port != 587 {
			t.Fatalf("expected smtp port 587, got %d", cfg.SMTP.Port)
		}
		if cfg.Payment.Mock {
			t.Fatalf("expected mock disabled")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BASE_URL", "https://haul.example.com/")
		t.Setenv("STORE_DRIVER", "Postgres")
		t.Setenv("ADMIN_SESSION_TTL", "2h")
		t.Setenv("SMTP_PORT", "2525")
		t.Setenv("SMTP_USER", "ops@haul.example.com")
		t.Setenv("SMTP_SENDER", "")
		t.Setenv("MERCADOPAGO_MOCK", "mock")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

		cfg := Load()
		if cfg.BaseURL != "https://haul.example.com" {
			t.Fatalf("expected trailing slash trimmed, got %s", cfg.BaseURL)
		}
		if cfg.StoreDriver != StorePostgres {
			t.Fatalf("expected postgres, got %s", cfg.StoreDriver)
		}
		if cfg.Admin.SessionTTL != 2*time.Hour {
			t.Fatalf("expected 2h, got %s", cfg.Admin.SessionTTL)
		}
		if cfg.SMTP.Port != 2525 {
			t.Fatalf("expected 2525, got %d", cfg.SMTP.Port)
		}
		if cfg.SMTP.Sender != "ops@haul.example.com" {
			t.Fatalf("expected sender to default to user, got %s", cfg.SMTP.Sender)
		}
		if !cfg.Payment.Mock {
			t.Fatalf("expected mock enabled")
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "abc")
		t.Setenv("ADMIN_SESSION_TTL", "-1h")
		t.Setenv("APP_TIMEZONE", "Not/AZone")

		cfg := Load()
		if cfg.SMTP.Port != 587 {
			t.Fatalf("expected default port, got %d", cfg.SMTP.Port)
		}
		if cfg.Admin.SessionTTL != 24*time.Hour {
			t.Fatalf("expected default ttl, got %s", cfg.Admin.SessionTTL)
		}
		if cfg.Location() != time.UTC {
			t.Fatalf("expected UTC fallback")
		}
	})
}
