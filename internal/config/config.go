package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Business  BusinessConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// UpstreamConfig points at the remote billing API that owns persistence.
// The base URL is injected here rather than compiled in so tests can run
// against a local mock endpoint.
type UpstreamConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	AllBillsLimit int
}

// BusinessConfig holds the identity printed on report headers.
type BusinessConfig struct {
	Name          string
	Brand         string
	GSTIN         string
	InvoicePrefix string
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "jumjum-admin-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:4000/api")
	viper.SetDefault("UPSTREAM_API_KEY", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("UPSTREAM_ALL_BILLS_LIMIT", 500)
	viper.SetDefault("BUSINESS_NAME", "SRI KALKI JAM JAM RESORTS")
	viper.SetDefault("BUSINESS_BRAND", "jumjum")
	viper.SetDefault("BUSINESS_GSTIN", "33AAACT2984P1ZY")
	viper.SetDefault("INVOICE_PREFIX", "JJ")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_TIMEOUT_SECONDS", 5)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Upstream: UpstreamConfig{
			BaseURL:       viper.GetString("UPSTREAM_BASE_URL"),
			APIKey:        viper.GetString("UPSTREAM_API_KEY"),
			Timeout:       time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
			AllBillsLimit: viper.GetInt("UPSTREAM_ALL_BILLS_LIMIT"),
		},
		Business: BusinessConfig{
			Name:          viper.GetString("BUSINESS_NAME"),
			Brand:         viper.GetString("BUSINESS_BRAND"),
			GSTIN:         viper.GetString("BUSINESS_GSTIN"),
			InvoicePrefix: viper.GetString("INVOICE_PREFIX"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Timeout: time.Duration(viper.GetInt("PRINTER_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
