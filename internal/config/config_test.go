package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "CALC_INCLUDE_LABOR", "OPENAI_API_KEY", "NARRATIVE_MOCK",
		"PRICE_SHEET_URL", "PRICE_SHEET_FILE", "PRICE_FETCH_TIMEOUT", "PRICE_CACHE_TTL",
		"ESTIMATE_STORE", "DEPOSIT_PERCENT", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 default origins, got %v", cfg.AllowedOrigins)
	}
	if !cfg.IncludeLabor {
		t.Fatalf("labor must be included by default")
	}
	if cfg.Prices.FetchTimeout != 10*time.Second {
		t.Fatalf("expected 10s fetch timeout, got %v", cfg.Prices.FetchTimeout)
	}
	if cfg.Prices.URL == "" {
		t.Fatalf("expected default price sheet url")
	}
	if cfg.Store.Driver != StoreDynamoDB {
		t.Fatalf("expected dynamodb store, got %q", cfg.Store.Driver)
	}
	if cfg.Payments.DepositPercent != 50 || cfg.Payments.Mock {
		t.Fatalf("unexpected payments config: %+v", cfg.Payments)
	}
	if cfg.OpenAI.NarrativeModel != "gpt-4" || cfg.OpenAI.ChatModel != "gpt-3.5-turbo" {
		t.Fatalf("unexpected openai config: %+v", cfg.OpenAI)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CALC_INCLUDE_LABOR", "no")
	t.Setenv("PRICE_FETCH_TIMEOUT", "3")
	t.Setenv("PRICE_CACHE_TTL", "90s")
	t.Setenv("ESTIMATE_STORE", "SQLite")
	t.Setenv("DEPOSIT_PERCENT", "30")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("NARRATIVE_MOCK", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.IncludeLabor {
		t.Fatalf("expected labor disabled")
	}
	if cfg.Prices.FetchTimeout != 3*time.Second || cfg.Prices.CacheTTL != 90*time.Second {
		t.Fatalf("unexpected durations: %+v", cfg.Prices)
	}
	if cfg.Store.Driver != StoreSQLite {
		t.Fatalf("expected sqlite store, got %q", cfg.Store.Driver)
	}
	if cfg.Payments.DepositPercent != 30 || !cfg.Payments.Mock {
		t.Fatalf("unexpected payments config: %+v", cfg.Payments)
	}
	if !cfg.OpenAI.Mock {
		t.Fatalf("expected narrative mock")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ESTIMATE_STORE", "postgres")
	t.Setenv("DEPOSIT_PERCENT", "150")
	t.Setenv("PRICE_FETCH_TIMEOUT", "soon")
	t.Setenv("CALC_INCLUDE_LABOR", "maybe")

	cfg := Load()

	if cfg.Store.Driver != StoreDynamoDB {
		t.Fatalf("expected fallback store, got %q", cfg.Store.Driver)
	}
	if cfg.Payments.DepositPercent != 50 {
		t.Fatalf("expected fallback deposit, got %v", cfg.Payments.DepositPercent)
	}
	if cfg.Prices.FetchTimeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.Prices.FetchTimeout)
	}
	if !cfg.IncludeLabor {
		t.Fatalf("expected fallback labor flag")
	}
}
