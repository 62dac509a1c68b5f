package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrRead возвращается, если файл конфигурации не удалось прочитать
	ErrRead = errors.New("config: failed to read file")

	// ErrInvalid возвращается, если конфигурация не прошла валидацию
	ErrInvalid = errors.New("config: invalid configuration")
)

// Переменные окружения, переопределяющие секреты и адреса
const (
	EnvDBHost        = "STUDIO_DB_HOST"
	EnvDBPassword    = "STUDIO_DB_PASSWORD"
	EnvRedisPassword = "STUDIO_REDIS_PASSWORD"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Holidays HolidaysConfig `toml:"holidays"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
	Migrate         bool   `toml:"migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// RedisConfig параметры кеша праздников. Пустой Addr отключает кеш
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"min=0"`
}

// CustomHoliday собственный праздник студии
type CustomHoliday struct {
	Date string `toml:"date" validate:"required,datetime=2006-01-02"`
	Name string `toml:"name" validate:"required"`
}

// HolidaysConfig источники праздников и политика их учета
type HolidaysConfig struct {
	URL           string          `toml:"url" validate:"omitempty,url"`
	Timeout       int             `toml:"timeout" validate:"min=1"`
	CacheTTL      int             `toml:"cache_ttl" validate:"min=0"`
	IgnoredScopes []string        `toml:"ignored_scopes" validate:"dive,oneof=national municipal custom"`
	Custom        []CustomHoliday `toml:"custom" validate:"dive"`
}

// Policy политика учета праздников
func (h HolidaysConfig) Policy() domain.HolidayPolicy {
	scopes := make([]domain.HolidayScope, 0, len(h.IgnoredScopes))
	for _, s := range h.IgnoredScopes {
		scopes = append(scopes, domain.HolidayScope(s))
	}
	return domain.HolidayPolicy{IgnoredScopes: scopes}
}

// CustomHolidays собственные праздники из конфига
func (h HolidaysConfig) CustomHolidays() []domain.Holiday {
	result := make([]domain.Holiday, 0, len(h.Custom))
	for _, c := range h.Custom {
		date, err := domain.ParseDate(c.Date)
		if err != nil {
			continue
		}
		result = append(result, domain.Holiday{Date: date, Scope: domain.HolidayCustom, Name: c.Name})
	}
	return result
}

// TimeoutDuration таймаут запроса к календарю
func (h HolidaysConfig) TimeoutDuration() time.Duration {
	return time.Duration(h.Timeout) * time.Second
}

// CacheTTLDuration время жизни записи в кеше
func (h HolidaysConfig) CacheTTLDuration() time.Duration {
	return time.Duration(h.CacheTTL) * time.Second
}

// ScheduleConfig параметры расписания студии
type ScheduleConfig struct {
	Timezone string `toml:"timezone" validate:"required"`
}

// Location часовой пояс студии для определения "сегодня"
func (s ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "studio_schedule",
		},
		Holidays: HolidaysConfig{
			Timeout:  5,
			CacheTTL: 86400,
		},
		Schedule: ScheduleConfig{Timezone: "UTC"},
	}
}

// Validate проверяет конфигурацию по тегам validate
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return fmt.Errorf("%w: schedule.timezone: %v", ErrInvalid, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvDBHost); ok && v != "" {
		cfg.Database.Host = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		cfg.Redis.Password = v
	}
	if v, ok := os.LookupEnv("STUDIO_HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}
