package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Database    DatabaseConfig    `toml:"database"`
	Mongo       MongoConfig       `toml:"mongo"`
	Metrics     MetricsConfig     `toml:"metrics"`
	UserService UserServiceConfig `toml:"user_service"`
	Pricing     PricingConfig     `toml:"pricing"`
	Sharing     SharingConfig     `toml:"sharing"`
	Notifier    NotifierConfig    `toml:"notifier"`
	Admin       AdminConfig       `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DatabaseConfig PostgreSQL для каталога и тарифных таблиц
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`

	// RawDSN перекрывает поля выше (DATABASE_DSN)
	RawDSN string `toml:"dsn"`
}

// DSN строка подключения для lib/pq и gorm
func (c DatabaseConfig) DSN() string {
	if c.RawDSN != "" {
		return c.RawDSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MongoConfig хранилище документов бронирований
type MongoConfig struct {
	URI            string `toml:"uri"`
	Database       string `toml:"database"`
	Collection     string `toml:"collection"`
	ConnectTimeout int    `toml:"connect_timeout"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// UserServiceConfig клиент сервиса профилей пользователей
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// PricingConfig параметры расчета цен.
// Отсутствующий child_discount_rate означает скидку по умолчанию.
type PricingConfig struct {
	ChildDiscountRate *float64 `toml:"child_discount_rate"`
}

// ChildDiscount доля скидки для детей
func (c PricingConfig) ChildDiscount() float64 {
	if c.ChildDiscountRate == nil {
		return domain.DefaultChildDiscountRate
	}
	return *c.ChildDiscountRate
}

// SharingConfig публичные ссылки групповых приглашений
type SharingConfig struct {
	PublicBaseURL string `toml:"public_base_url"`
}

// NotifierConfig уведомления о подтверждении бронирования
type NotifierConfig struct {
	Enabled           bool   `toml:"enabled"`
	SenderEmail       string `toml:"sender_email"`
	AgencyPhone       string `toml:"agency_phone"`
	GmailClientID     string `toml:"gmail_client_id"`
	GmailClientSecret string `toml:"gmail_client_secret"`
	GmailRefreshToken string `toml:"gmail_refresh_token"`
	Timeout           int    `toml:"timeout"`
}

// AdminConfig пользователи с правами администратора
type AdminConfig struct {
	UserIDs []string `toml:"user_ids"`
}

// IsAdmin проверяет, входит ли пользователь в список администраторов
func (c AdminConfig) IsAdmin(userID string) bool {
	for _, id := range c.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Load читает TOML файл, затем .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Mongo.URI == "" {
		problems = append(problems, "mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		problems = append(problems, "mongo.database is required")
	}
	if c.Database.RawDSN == "" && c.Database.Host == "" {
		problems = append(problems, "database.host or database.dsn is required")
	}
	if rate := c.Pricing.ChildDiscount(); rate < 0 || rate > 1 {
		problems = append(problems, "pricing.child_discount_rate must be in 0..1")
	}
	if c.Notifier.Enabled {
		if c.Notifier.SenderEmail == "" {
			problems = append(problems, "notifier.sender_email is required when notifier is enabled")
		}
		if c.Notifier.GmailClientID == "" || c.Notifier.GmailClientSecret == "" || c.Notifier.GmailRefreshToken == "" {
			problems = append(problems, "notifier gmail credentials are required when notifier is enabled")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Database.RawDSN = getEnv("DATABASE_DSN", cfg.Database.RawDSN)
	cfg.Mongo.URI = getEnv("MONGO_URI", cfg.Mongo.URI)
	cfg.Mongo.Database = getEnv("MONGO_DATABASE", cfg.Mongo.Database)
	cfg.Notifier.GmailClientID = getEnv("GMAIL_CLIENT_ID", cfg.Notifier.GmailClientID)
	cfg.Notifier.GmailClientSecret = getEnv("GMAIL_CLIENT_SECRET", cfg.Notifier.GmailClientSecret)
	cfg.Notifier.GmailRefreshToken = getEnv("GMAIL_REFRESH_TOKEN", cfg.Notifier.GmailRefreshToken)
	cfg.Server.HTTPPort = getEnvAsInt("HTTP_PORT", cfg.Server.HTTPPort)
	cfg.Logs.Level = getEnv("LOG_LEVEL", cfg.Logs.Level)
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Server.HTTPPort, 8080)
	setDefault(&cfg.Server.ReadTimeout, 15)
	setDefault(&cfg.Server.WriteTimeout, 15)
	setDefault(&cfg.Server.IdleTimeout, 60)
	setDefault(&cfg.Server.ShutdownTimeout, 10)

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	setDefault(&cfg.Database.Port, 5432)
	setDefault(&cfg.Database.MaxOpenConns, 25)
	setDefault(&cfg.Database.MaxIdleConns, 5)
	setDefault(&cfg.Database.ConnMaxLifetime, 300)
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = "bookings"
	}
	setDefault(&cfg.Mongo.ConnectTimeout, 10)

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "travel_booking"
	}

	setDefault(&cfg.UserService.Timeout, 5)
	setDefault(&cfg.Notifier.Timeout, 10)
}

func setDefault(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
