package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Драйверы инфраструктуры
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverKafka  = "kafka"
	DriverLog    = "log"
	DriverSMTP   = "smtp"
)

type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	Cache         CacheConfig         `toml:"cache"`
	Events        EventsConfig        `toml:"events"`
	Mail          MailConfig          `toml:"mail"`
	Notifications NotificationsConfig `toml:"notifications"`
	StaffService  StaffServiceConfig  `toml:"staff_service"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
}

// DSN строка подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политики бронирования
type BookingConfig struct {
	Timezone               string  `toml:"timezone"`
	MaxAdvanceDays         int     `toml:"max_advance_days"`
	DefaultDurationMinutes int     `toml:"default_duration_minutes"`
	AutoConfirmRatio       float64 `toml:"auto_confirm_ratio"`
	TierThreshold          int     `toml:"tier_threshold"`
	AutoCancelGraceMinutes int     `toml:"auto_cancel_grace_minutes"`
	SweepIntervalSeconds   int     `toml:"sweep_interval_seconds"`
	LockTTLSeconds         int     `toml:"lock_ttl_seconds"`
	LockWaitMillis         int     `toml:"lock_wait_millis"`
	CodeMaxAttempts        int     `toml:"code_max_attempts"`
}

// Location часовой пояс филиалов
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

type CacheConfig struct {
	Driver   string `toml:"driver"` // memory | redis
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type EventsConfig struct {
	Driver  string   `toml:"driver"` // memory | kafka
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

type MailConfig struct {
	Driver   string `toml:"driver"` // log | smtp
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	FromName string `toml:"from_name"`
}

type NotificationsConfig struct {
	Persist               bool `toml:"persist"` // false - только временные ID
	PreferencesTTLSeconds int  `toml:"preferences_ttl_seconds"`
}

type StaffServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает TOML файл. Перед разбором подгружается .env рядом с процессом
// и подставляются переменные окружения вида ${VAR}
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML, проставляет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "table_booking_service"
	}

	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
	setDefault(&c.Booking.MaxAdvanceDays, domain.DefaultMaxAdvanceDays)
	setDefault(&c.Booking.DefaultDurationMinutes, domain.DefaultDurationMinutes)
	setDefault(&c.Booking.TierThreshold, domain.DefaultTierThreshold)
	setDefault(&c.Booking.AutoCancelGraceMinutes, domain.DefaultAutoCancelGraceMinutes)
	setDefault(&c.Booking.SweepIntervalSeconds, 60)
	setDefault(&c.Booking.LockTTLSeconds, 10)
	setDefault(&c.Booking.LockWaitMillis, 2000)
	setDefault(&c.Booking.CodeMaxAttempts, domain.DefaultCodeMaxAttempts)
	if c.Booking.AutoConfirmRatio == 0 {
		c.Booking.AutoConfirmRatio = domain.DefaultAutoConfirmRatio
	}

	c.Cache.Driver = strings.ToLower(c.Cache.Driver)
	if c.Cache.Driver == "" {
		c.Cache.Driver = DriverMemory
	}
	c.Events.Driver = strings.ToLower(c.Events.Driver)
	if c.Events.Driver == "" {
		c.Events.Driver = DriverMemory
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "booking-events"
	}
	c.Mail.Driver = strings.ToLower(c.Mail.Driver)
	if c.Mail.Driver == "" {
		c.Mail.Driver = DriverLog
	}
	setDefault(&c.Mail.Port, 587)

	setDefault(&c.Notifications.PreferencesTTLSeconds, 3600)
	setDefault(&c.StaffService.Timeout, 5)
}

// Validate проверяет согласованность секций
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.StaffService.URL == "" {
		return fmt.Errorf("%w: staff_service url is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	if c.Booking.AutoConfirmRatio < 0 || c.Booking.AutoConfirmRatio > 1 {
		return fmt.Errorf("%w: booking auto_confirm_ratio must be within (0, 1]", ErrInvalidConfig)
	}

	switch c.Cache.Driver {
	case DriverMemory:
	case DriverRedis:
		if c.Cache.Addr == "" {
			return fmt.Errorf("%w: cache addr is required for redis", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache driver %q", ErrInvalidConfig, c.Cache.Driver)
	}

	switch c.Events.Driver {
	case DriverMemory:
	case DriverKafka:
		if len(c.Events.Brokers) == 0 {
			return fmt.Errorf("%w: events brokers are required for kafka", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown events driver %q", ErrInvalidConfig, c.Events.Driver)
	}

	switch c.Mail.Driver {
	case DriverLog:
	case DriverSMTP:
		if c.Mail.Host == "" || c.Mail.From == "" {
			return fmt.Errorf("%w: mail host and from are required for smtp", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown mail driver %q", ErrInvalidConfig, c.Mail.Driver)
	}

	return nil
}

func setDefault(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}
