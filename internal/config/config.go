package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Upstream      Upstream      `mapstructure:",squash"`
	Cookie        Cookie        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	LookupCache   LookupCache   `mapstructure:",squash"`
	UpstreamProbe UpstreamProbe `mapstructure:",squash"`
	Metrics       Metrics       `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Upstream struct {
	URL     string        `mapstructure:"upstream_url"`
	Timeout time.Duration `mapstructure:"upstream_timeout"`
}

type Cookie struct {
	// Secure is derived from App.Env
	Secure bool `mapstructure:"-"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Enabled         bool          `mapstructure:"database_enabled"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type LookupCache struct {
	RedisURL string        `mapstructure:"lookup_cache_redis_url"`
	TTL      time.Duration `mapstructure:"lookup_cache_ttl"`
}

type UpstreamProbe struct {
	CronSchedule string `mapstructure:"upstream_probe_cron"`
	Enabled      bool   `mapstructure:"upstream_probe_enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

// IsProduction reports whether the service runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("UPSTREAM_URL", "https://api.pointnow.io/api/v1")
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")

	viper.SetDefault("DATABASE_ENABLED", true)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pointnow_admin?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("LOOKUP_CACHE_REDIS_URL", "")
	viper.SetDefault("LOOKUP_CACHE_TTL", "60s")

	viper.SetDefault("UPSTREAM_PROBE_CRON", "* * * * *") // every minute
	viper.SetDefault("UPSTREAM_PROBE_ENABLED", true)

	viper.SetDefault("METRICS_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Upstream.URL = strings.TrimRight(config.Upstream.URL, "/")
	config.Cookie.Secure = config.IsProduction()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
