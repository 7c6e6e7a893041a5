package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	CORSOrigins []string
	Database    DatabaseConfig
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

// Load reads .env.<APP_ENV> and .env when present, then the environment.
// Variables already set in the environment win over both files.
func Load() (*Config, error) {
	env := viperEnv("APP_ENV", EnvDevelopment)
	_ = godotenv.Load(".env." + env)
	_ = godotenv.Load()

	return FromViper(newViper(env))
}

func viperEnv(key, fallback string) string {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(key, fallback)
	return v.GetString(key)
}

func newViper(env string) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", env)
	v.SetDefault("PORT", "9090")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("PGHOST", "localhost")
	v.SetDefault("PGPORT", "5432")
	v.SetDefault("PGSSLMODE", "disable")
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_MIGRATE", true)
	if env == EnvProduction {
		v.SetDefault("DB_MAX_OPEN_CONNS", 2)
	} else {
		v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	}

	return v
}

// FromViper builds the Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CORSOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("PGHOST"),
			Port:            v.GetString("PGPORT"),
			User:            v.GetString("PGUSER"),
			Password:        v.GetString("PGPASSWORD"),
			Name:            v.GetString("PGDATABASE"),
			SSLMode:         v.GetString("PGSSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			Migrate:         v.GetBool("DB_MIGRATE"),
		},
	}

	if cfg.Database.URL == "" && cfg.Database.Name == "" {
		return nil, errors.New("PGDATABASE or DATABASE_URL not set")
	}
	if cfg.Database.MaxIdleConns > cfg.Database.MaxOpenConns {
		cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns
	}

	return cfg, nil
}

// DSN prefers DATABASE_URL and otherwise assembles a URL from the
// discrete PG* settings.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	if d.SSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(d.SSLMode)
	}
	return u.String()
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
