package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Storage backends
const (
	BackendPostgres = "postgres"
	BackendJSONFile = "jsonfile"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Admin    AdminConfig    `toml:"admin"`
	Venues   VenuesConfig   `toml:"venues"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор бэкенда долговременного хранилища
// backend = "postgres" | "jsonfile"
type StorageConfig struct {
	Backend      string `toml:"backend"`
	BookingsFile string `toml:"bookings_file"`
	AuditFile    string `toml:"audit_file"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AdminConfig настройки административного доступа
// Токен - общий статический секрет, фича-флаг повышенного режима, а не аутентификация
type AdminConfig struct {
	Token string `toml:"token"`
}

// VenuesConfig расположение справочника площадок
// Пустой file означает использование встроенного набора
type VenuesConfig struct {
	File string `toml:"file"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "venue-booking-service",
			Path:        "/metrics",
		},
		Storage: StorageConfig{
			Backend:      BackendJSONFile,
			BookingsFile: "data/bookings.json",
			AuditFile:    "data/audit.log",
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendPostgres, BackendJSONFile:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	if c.Storage.Backend == BackendJSONFile {
		if c.Storage.BookingsFile == "" || c.Storage.AuditFile == "" {
			return fmt.Errorf("config: jsonfile backend requires bookings_file and audit_file")
		}
	}

	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin token is required")
	}

	return nil
}
