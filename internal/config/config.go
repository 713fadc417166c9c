package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Identity  IdentityConfig  `toml:"identity"`
	Mail      MailConfig      `toml:"mail"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	Sweeper   SweeperConfig   `toml:"sweeper"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

type IdentityConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

type MailConfig struct {
	SendGridAPIKey string `toml:"sendgrid_api_key"`
	FromEmail      string `toml:"from_email"`
	FromName       string `toml:"from_name"`
	AppURL         string `toml:"app_url"`
}

type ScheduleConfig struct {
	Timezone string `toml:"timezone"`
}

type SweeperConfig struct {
	Enabled bool   `toml:"enabled"`
	Cron    string `toml:"cron"`
}

type RateLimitConfig struct {
	RequestsPerMinute int      `toml:"requests_per_minute"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // IP или CIDR балансировщиков перед сервисом
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML файл, затем .env и переменные окружения с секретами
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrateOnStart:  true,
		},
		Logs:      LogsConfig{Level: "info"},
		Metrics:   MetricsConfig{Path: "/metrics", ServiceName: "booking-service"},
		Identity:  IdentityConfig{Timeout: 10},
		Schedule:  ScheduleConfig{Timezone: "Europe/Madrid"},
		Sweeper:   SweeperConfig{Cron: "*/15 * * * *"},
		RateLimit: RateLimitConfig{RequestsPerMinute: 5, Burst: 5},
	}
}

// applyEnv переопределяет секреты из окружения
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		c.Database.Port = port
	}
	if v, ok := os.LookupEnv("AUTH_JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv("SENDGRID_API_KEY"); ok {
		c.Mail.SendGridAPIKey = v
	}
	if v, ok := os.LookupEnv("IDENTITY_URL"); ok {
		c.Identity.URL = v
	}
	if v, ok := os.LookupEnv("IDENTITY_API_KEY"); ok {
		c.Identity.APIKey = v
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		problems = append(problems, "database.host, database.dbname and database.user are required")
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret (or AUTH_JWT_SECRET) is required")
	}
	if c.Identity.URL != "" {
		if u, err := url.Parse(c.Identity.URL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, "identity.url must be an absolute URL")
		}
	}
	if c.Mail.SendGridAPIKey != "" && c.Mail.FromEmail == "" {
		problems = append(problems, "mail.from_email is required when sendgrid is configured")
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("schedule.timezone %q is unknown", c.Schedule.Timezone))
	}
	if c.Sweeper.Enabled && strings.TrimSpace(c.Sweeper.Cron) == "" {
		problems = append(problems, "sweeper.cron is required when the sweeper is enabled")
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		problems = append(problems, "rate_limit.requests_per_minute and rate_limit.burst must be positive")
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if !validProxy(proxy) {
			problems = append(problems, fmt.Sprintf("rate_limit.trusted_proxies entry %q is not an IP or CIDR", proxy))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func validProxy(entry string) bool {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		_, _, err := net.ParseCIDR(entry)
		return err == nil
	}
	return net.ParseIP(entry) != nil
}
