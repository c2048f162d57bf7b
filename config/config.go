package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AuthModeJWT        = "jwt"
	AuthModeIntrospect = "introspect"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv string `yaml:"app_env"`
	Port   string `yaml:"port"`

	Database struct {
		Driver       string `yaml:"driver"`
		DSN          string `yaml:"dsn"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
	} `yaml:"database"`

	Auth struct {
		Mode        string        `yaml:"mode"`
		JWTSecret   string        `yaml:"jwt_secret"`
		ProviderURL string        `yaml:"provider_url"`
		APIKey      string        `yaml:"api_key"`
		TokenTTL    time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Schedule struct {
		AdminRoleID uint          `yaml:"admin_role_id"`
		CacheTTL    time.Duration `yaml:"cache_ttl"`
		MaxDays     int           `yaml:"max_days"`
	} `yaml:"schedule"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	MetricsEnabled bool `yaml:"metrics_enabled"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
}

// Load reads the optional YAML file named by CONFIG_FILE, applies environment
// overrides and defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if path := GetEnv("CONFIG_FILE", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// ${ENV_VAR} placeholders are allowed in the file.
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.AppEnv = GetEnv("APP_ENV", orDefault(cfg.AppEnv, "development"))
	cfg.Port = GetEnv("PORT", cfg.Port)

	cfg.Database.Driver = strings.ToLower(GetEnv("DB_DRIVER", orDefault(cfg.Database.Driver, DriverMySQL)))
	cfg.Database.DSN = GetEnv("DB_DSN", cfg.Database.DSN)
	cfg.Database.MaxOpenConns = GetEnvAsInt("DB_MAX_OPEN_CONNS", orDefaultInt(cfg.Database.MaxOpenConns, 25))
	cfg.Database.MaxIdleConns = GetEnvAsInt("DB_MAX_IDLE_CONNS", orDefaultInt(cfg.Database.MaxIdleConns, 5))

	cfg.Auth.Mode = strings.ToLower(GetEnv("AUTH_MODE", orDefault(cfg.Auth.Mode, AuthModeJWT)))
	cfg.Auth.JWTSecret = GetEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.ProviderURL = strings.TrimRight(GetEnv("AUTH_PROVIDER_URL", cfg.Auth.ProviderURL), "/")
	cfg.Auth.APIKey = GetEnv("AUTH_API_KEY", cfg.Auth.APIKey)
	cfg.Auth.TokenTTL = GetEnvAsDuration("TOKEN_TTL", orDefaultDuration(cfg.Auth.TokenTTL, 24*time.Hour))

	cfg.Redis.Address = GetEnv("REDIS_ADDR", cfg.Redis.Address)
	cfg.Redis.Password = GetEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.Schedule.AdminRoleID = uint(GetEnvAsInt("ADMIN_ROLE_ID", int(orDefaultUint(cfg.Schedule.AdminRoleID, 7))))
	cfg.Schedule.CacheTTL = GetEnvAsDuration("SCHEDULE_CACHE_TTL", orDefaultDuration(cfg.Schedule.CacheTTL, 30*time.Second))
	cfg.Schedule.MaxDays = GetEnvAsInt("MAX_SCHEDULE_DAYS", orDefaultInt(cfg.Schedule.MaxDays, 62))

	cfg.Log.Level = GetEnv("LOG_LEVEL", orDefault(cfg.Log.Level, "info"))
	cfg.Log.Format = GetEnv("LOG_FORMAT", orDefault(cfg.Log.Format, "json"))
	cfg.MetricsEnabled = GetEnvAsBool("METRICS_ENABLED", cfg.MetricsEnabled)

	cfg.SMTP.Host = GetEnv("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = GetEnvAsInt("SMTP_PORT", orDefaultInt(cfg.SMTP.Port, 587))
	cfg.SMTP.Username = GetEnv("SMTP_USERNAME", cfg.SMTP.Username)
	cfg.SMTP.Password = GetEnv("SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.From = GetEnv("SMTP_FROM", cfg.SMTP.From)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing required value at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DB_DSN is required"))
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported", c.Database.Driver))
	}
	switch c.Auth.Mode {
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required"))
		}
	case AuthModeIntrospect:
		if c.Auth.ProviderURL == "" {
			errs = append(errs, errors.New("AUTH_PROVIDER_URL is required"))
		}
		if c.Auth.APIKey == "" {
			errs = append(errs, errors.New("AUTH_API_KEY is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("AUTH_MODE %q is not supported", c.Auth.Mode))
	}
	if c.Schedule.MaxDays < 1 {
		errs = append(errs, errors.New("MAX_SCHEDULE_DAYS must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.From != ""
}

// GetEnv returns the variable, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration accepts Go durations ("45s") or plain seconds ("45").
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultUint(v, def uint) uint {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
