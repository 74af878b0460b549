package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Tracing    TracingConfig

	// Invoicing
	Billomat BillomatConfig
	Invoice  InvoiceConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type TracingConfig struct {
	Enabled     bool
	Exporter    string
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

// BillomatConfig configures the Billomat API client. AccountID and APIKey are
// fallbacks for requests that do not carry their own.
type BillomatConfig struct {
	AccountID       string
	APIKey          string
	BaseURL         string // overrides https://<account>.billomat.net/api/, "{account}" is substituted
	ClientPageSize  int
	ContactPageSize int
	Timeout         time.Duration
}

type InvoiceConfig struct {
	Locale         string
	CurrencySymbol string
	Logo           string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Tracing
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.Exporter = viper.GetString("tracing.exporter")
	cfg.Tracing.Endpoint = viper.GetString("tracing.endpoint")
	cfg.Tracing.Insecure = viper.GetBool("tracing.insecure")
	cfg.Tracing.SampleRatio = viper.GetFloat64("tracing.sample_ratio")

	// Billomat
	cfg.Billomat.AccountID = viper.GetString("billomat.account_id")
	cfg.Billomat.APIKey = viper.GetString("billomat.api_key")
	if apiKey := viper.GetString("billomat_api_key"); apiKey != "" {
		cfg.Billomat.APIKey = apiKey
	}
	cfg.Billomat.BaseURL = viper.GetString("billomat.base_url")
	cfg.Billomat.ClientPageSize = viper.GetInt("billomat.client_page_size")
	cfg.Billomat.ContactPageSize = viper.GetInt("billomat.contact_page_size")
	cfg.Billomat.Timeout = viper.GetDuration("billomat.timeout")

	// Invoice rendering
	cfg.Invoice.Locale = viper.GetString("invoice.locale")
	cfg.Invoice.CurrencySymbol = viper.GetString("invoice.currency_symbol")
	cfg.Invoice.Logo = viper.GetString("invoice.logo")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Billomat.ClientPageSize <= 0 || cfg.Billomat.ContactPageSize <= 0 {
		return fmt.Errorf("billomat page sizes must be positive")
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0, 1], got %v", cfg.Tracing.SampleRatio)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.sample_ratio", 0.1)

	viper.SetDefault("billomat.client_page_size", 50)
	viper.SetDefault("billomat.contact_page_size", 100)
	viper.SetDefault("billomat.timeout", "30s")

	viper.SetDefault("invoice.locale", "en-US")
	viper.SetDefault("invoice.currency_symbol", "€")
	viper.SetDefault("invoice.logo", "plugins/BillomatInvoices/billomat_logo.png")
}
