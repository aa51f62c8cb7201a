package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Billing BillingConfig
	Mail    MailConfig
	Notify  NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"hotel-backoffice"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// BillingConfig holds invoice settings. TaxRate is a fraction (0.21 = 21%).
type BillingConfig struct {
	TaxRate       string `envconfig:"BILLING_TAX_RATE" default:"0.21"`
	InvoicePrefix string `envconfig:"BILLING_INVOICE_PREFIX" default:"INV"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"frontdesk@hotel.local"`
	FromName string `envconfig:"MAIL_FROM_NAME" default:"Front Desk"`
}

type NotifyConfig struct {
	Enabled     bool          `envconfig:"NOTIFY_ENABLED" default:"false"`
	Interval    time.Duration `envconfig:"NOTIFY_INTERVAL" default:"30s"`
	BatchSize   int32         `envconfig:"NOTIFY_BATCH_SIZE" default:"20"`
	MaxAttempts int32         `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	Lease       time.Duration `envconfig:"NOTIFY_LEASE" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// TaxRateDecimal parses the configured rate. Values outside [0,1] are rejected.
func (c BillingConfig) TaxRateDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid BILLING_TAX_RATE %q: %w", c.TaxRate, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("BILLING_TAX_RATE must be between 0 and 1, got %s", c.TaxRate)
	}
	return rate, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Issuer:   "hotel-backoffice-test",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Billing: BillingConfig{
			TaxRate:       "0.21",
			InvoicePrefix: "INV",
		},
		Notify: NotifyConfig{
			Enabled:     false,
			Interval:    time.Second,
			BatchSize:   10,
			MaxAttempts: 3,
			Lease:       time.Minute,
		},
	}
}
