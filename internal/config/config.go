// Package config collects runtime settings for the portfolio server.
// Values come from the environment (optionally seeded from a .env file)
// and from command line flags that override them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL points at a sqlite file in the working directory.
	DefaultDatabaseURL = "file:portfolio.db"

	// DefaultSMTPHost and DefaultSMTPPort match a typical submission relay.
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = "587"

	// DefaultVisitorRetention is how long hashed visitor rows are kept.
	DefaultVisitorRetention = 365 * 24 * time.Hour

	// DefaultDeliveryInterval is how often the delivery worker polls for due messages.
	DefaultDeliveryInterval = 30 * time.Second

	// DefaultMaxDeliveryAttempts bounds delivery passes before a message is marked failed.
	DefaultMaxDeliveryAttempts = 5

	// DefaultContactPerMinute and DefaultContactBurst limit contact submissions per client.
	DefaultContactPerMinute = 3
	DefaultContactBurst     = 3

	devAdminUsername = "admin"
	devAdminPassword = "admin123"
)

// SMTPConfig holds outgoing mail settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Enabled reports whether credentials are present.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

// Addr is host:port.
func (s SMTPConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// AdminConfig holds the single admin credential.
type AdminConfig struct {
	Username string
	Password string
}

// Config is the full server configuration.
type Config struct {
	Port        string
	DatabaseURL string
	ContentFile string
	LogLevel    string
	LogFormat   string
	Debug       bool

	SMTP  SMTPConfig
	Admin AdminConfig

	// VisitorSalt keys the visitor IP hash. Empty means a random salt per process,
	// so unique counts reset on restart.
	VisitorSalt string

	// SecureCookies marks the admin cookie Secure. Enable behind TLS.
	SecureCookies bool

	VisitorRetention    time.Duration
	DeliveryInterval    time.Duration
	MaxDeliveryAttempts int
	ContactPerMinute    int
	ContactBurst        int
}

// FromEnv builds a Config from environment variables, falling back to defaults.
// Development-only admin credentials are filled in when GIN_MODE is not "release".
func FromEnv() *Config {
	cfg := &Config{
		Port:        getenv("PORT", DefaultPort),
		DatabaseURL: getenv("DATABASE_URL", DefaultDatabaseURL),
		ContentFile: os.Getenv("CONTENT_FILE"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
		Debug:       os.Getenv("GIN_MODE") != "release",
		SMTP: SMTPConfig{
			Host: getenv("SMTP_HOST", DefaultSMTPHost),
			Port: getenv("SMTP_PORT", DefaultSMTPPort),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		VisitorSalt:         os.Getenv("VISITOR_SALT"),
		SecureCookies:       getBool("SECURE_COOKIES", false),
		VisitorRetention:    getDuration("VISITOR_RETENTION", DefaultVisitorRetention),
		DeliveryInterval:    getDuration("DELIVERY_INTERVAL", DefaultDeliveryInterval),
		MaxDeliveryAttempts: getInt("MAX_DELIVERY_ATTEMPTS", DefaultMaxDeliveryAttempts),
		ContactPerMinute:    getInt("CONTACT_PER_MINUTE", DefaultContactPerMinute),
		ContactBurst:        getInt("CONTACT_BURST", DefaultContactBurst),
	}

	if cfg.Admin.Username == "" {
		cfg.Admin.Username = devAdminUsername
	}
	if cfg.Admin.Password == "" && cfg.Debug {
		cfg.Admin.Password = devAdminPassword
	}
	return cfg
}

// UsingDevCredentials reports whether the built-in development password is active.
func (c *Config) UsingDevCredentials() bool {
	return c.Admin.Password == devAdminPassword
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if err := validPort(c.Port); err != nil {
		return fmt.Errorf("port: %w", err)
	}
	if err := validPort(c.SMTP.Port); err != nil {
		return fmt.Errorf("smtp port: %w", err)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("database url is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set in release mode")
	}
	if c.MaxDeliveryAttempts < 1 {
		return fmt.Errorf("max delivery attempts must be at least 1, got %d", c.MaxDeliveryAttempts)
	}
	if c.DeliveryInterval <= 0 {
		return fmt.Errorf("delivery interval must be positive")
	}
	return nil
}

func validPort(p string) error {
	n, err := strconv.Atoi(p)
	if err != nil {
		return fmt.Errorf("%q is not a number", p)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("%d out of range", n)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
