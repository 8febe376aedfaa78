// Package config reads process configuration once at startup. Every other
// package receives the values it needs through constructors.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"

	defaultPort           = "8080"
	defaultPriceSheetURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRWyYuTQxC8_fKNBg9_aJiB7NMFztw6mgdhN35lo8sRL45MvncRg4D217lopZxuw39j5aJTN6TP4Elh/pub?output=csv"
	defaultNarrativeModel = "gpt-4"
	defaultChatModel      = "gpt-3.5-turbo"
	defaultDepositPercent = 50.0
	defaultSQLitePath     = "./estimates.db"
	defaultEstimatesTable = "estimates"
	defaultPaymentsTable  = "payments"
	defaultAllowedOrigins = "https://www.surprisegranite.com,https://www.remodely.ai"
	defaultFetchTimeout   = 10 * time.Second
	defaultPriceCacheTTL  = 5 * time.Minute
)

type Config struct {
	Port           string
	AllowedOrigins []string

	OpenAI   OpenAIConfig
	Prices   PriceSheetConfig
	Store    StoreConfig
	AWS      AWSConfig
	Payments PaymentsConfig
	Business BusinessInfo

	// IncludeLabor selects the labor-included calculation; false reproduces
	// the materials-only calculator.
	IncludeLabor bool
}

type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	NarrativeModel string
	ChatModel      string
	Mock           bool
}

type PriceSheetConfig struct {
	URL          string
	File         string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

type StoreConfig struct {
	Driver     string
	SQLitePath string
}

// AWSConfig is local-friendly: static credentials default to "local" so the
// SDK works against DynamoDB Local.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	EstimatesTable   string
	PaymentsTable    string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
	DepositPercent         float64
	TestPayerEmail         string
	TestPayerUserID        string
}

type BusinessInfo struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	GoogleBusiness string `json:"googleBusiness"`
}

// Load reads the environment. Call it after .env has been loaded.
func Load() Config {
	cfg := Config{
		Port:           getenvDefault("PORT", defaultPort),
		AllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		IncludeLabor:   getenvBool("CALC_INCLUDE_LABOR", true),
		OpenAI: OpenAIConfig{
			APIKey:         os.Getenv("OPENAI_API_KEY"),
			BaseURL:        os.Getenv("OPENAI_BASE_URL"),
			NarrativeModel: getenvDefault("OPENAI_NARRATIVE_MODEL", defaultNarrativeModel),
			ChatModel:      getenvDefault("OPENAI_CHAT_MODEL", defaultChatModel),
			Mock:           getenvBool("NARRATIVE_MOCK", false),
		},
		Prices: PriceSheetConfig{
			URL:          getenvDefault("PRICE_SHEET_URL", defaultPriceSheetURL),
			File:         os.Getenv("PRICE_SHEET_FILE"),
			FetchTimeout: getenvDuration("PRICE_FETCH_TIMEOUT", defaultFetchTimeout),
			CacheTTL:     getenvDuration("PRICE_CACHE_TTL", defaultPriceCacheTTL),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getenvDefault("ESTIMATE_STORE", StoreDynamoDB)),
			SQLitePath: getenvDefault("SQLITE_PATH", defaultSQLitePath),
		},
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			EstimatesTable:   getenvDefault("ESTIMATES_TABLE", defaultEstimatesTable),
			PaymentsTable:    getenvDefault("PAYMENTS_TABLE", defaultPaymentsTable),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:                   getenvBool("PAYMENT_GATEWAY_MOCK", false) || getenvBool("MERCADOPAGO_MOCK", false),
			DepositPercent:         getenvFloat("DEPOSIT_PERCENT", defaultDepositPercent),
			TestPayerEmail:         strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID:        strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
		Business: BusinessInfo{
			Name:           getenvDefault("BUSINESS_NAME", "Surprise Granite"),
			Address:        getenvDefault("BUSINESS_ADDRESS", "11560 N Dysart Rd. #112, Surprise, AZ 85379"),
			Phone:          getenvDefault("BUSINESS_PHONE", "(602) 833-3189"),
			Email:          getenvDefault("BUSINESS_EMAIL", "info@surprisegranite.com"),
			GoogleBusiness: getenvDefault("BUSINESS_GOOGLE_URL", "https://g.co/kgs/Y9XGbpd"),
		},
	}

	if cfg.Store.Driver != StoreDynamoDB && cfg.Store.Driver != StoreSQLite {
		log.Printf("[config] unknown ESTIMATE_STORE=%q, using %s", cfg.Store.Driver, StoreDynamoDB)
		cfg.Store.Driver = StoreDynamoDB
	}
	if cfg.Payments.DepositPercent <= 0 || cfg.Payments.DepositPercent > 100 {
		log.Printf("[config] DEPOSIT_PERCENT out of range (%v), using %v", cfg.Payments.DepositPercent, defaultDepositPercent)
		cfg.Payments.DepositPercent = defaultDepositPercent
	}
	if cfg.OpenAI.APIKey == "" && !cfg.OpenAI.Mock {
		log.Print("[config] warning: OPENAI_API_KEY is not set; narratives and chat will be unavailable")
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	log.Printf("[config] invalid boolean %s=%q, using %v", key, v, def)
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid number %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

// getenvDuration accepts Go durations ("30s") or plain seconds ("30").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[config] invalid duration %s=%q, using %v", key, v, def)
	return def
}

func getenvList(key, def string) []string {
	raw := getenvDefault(key, def)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
