package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Directory    IntegrationConfig  `toml:"directory_service"`
	Notification IntegrationConfig  `toml:"notification_service"`
	Payment      IntegrationConfig  `toml:"payment_service"`
	Policy       PolicyConfig       `toml:"policy"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// DSN собирает строку подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки прометеевских метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// PolicyConfig финансовая политика: комиссия и правила отмены.
// Значения должны совпадать с продуктовой политикой салонов; тесты могут
// подставлять свои.
type PolicyConfig struct {
	MasterShare             float64 `toml:"master_share"`
	SalonShare              float64 `toml:"salon_share"`
	CancellationWindowHours float64 `toml:"cancellation_window_hours"`
	EarlyRefundPercent      float64 `toml:"early_refund_percent"`
	LateRefundPercent       float64 `toml:"late_refund_percent"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-system"
	}

	// Дефолтная политика: 70/30 и окно отмены 24 часа
	if cfg.Policy.MasterShare == 0 && cfg.Policy.SalonShare == 0 {
		cfg.Policy.MasterShare = 0.70
		cfg.Policy.SalonShare = 0.30
	}
	if cfg.Policy.CancellationWindowHours == 0 {
		cfg.Policy.CancellationWindowHours = 24
	}
	if cfg.Policy.EarlyRefundPercent == 0 {
		cfg.Policy.EarlyRefundPercent = 1.0
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if cfg.Policy.MasterShare < 0 || cfg.Policy.SalonShare < 0 {
		return fmt.Errorf("config: policy shares must be non-negative")
	}
	if cfg.Policy.MasterShare+cfg.Policy.SalonShare > 1.0+1e-9 {
		return fmt.Errorf("config: policy shares must not exceed 1.0 in total")
	}
	return nil
}
