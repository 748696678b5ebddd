package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrMissingEnv возвращается, когда не задана обязательная переменная окружения.
var ErrMissingEnv = errors.New("не задана обязательная переменная окружения")

// Config содержит параметры подключения и запуска сервиса.
// Собирается один раз из окружения и передаётся явно во все компоненты.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string // привилегированный (service role) пароль к хранилищу
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string

	AccessSecret  []byte
	RefreshSecret []byte

	StudyCron string
	Location  *time.Location

	HTTPAddr string
	LogLevel string
}

// Load читает окружение и проверяет обязательные параметры хранилища.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "postgres"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AccessSecret:  []byte(os.Getenv("JWT_ACCESS_SECRET")),
		RefreshSecret: []byte(os.Getenv("JWT_REFRESH_SECRET")),
		StudyCron:     getenv("STUDY_CRON", "0 5 0 * * *"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		Location:      time.Local,
	}

	if cfg.DBHost == "" {
		return nil, errors.Wrap(ErrMissingEnv, "DB_HOST")
	}
	if cfg.DBPassword == "" {
		return nil, errors.Wrap(ErrMissingEnv, "DB_PASSWORD")
	}

	if tz := strings.TrimSpace(os.Getenv("STUDY_TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, errors.Wrapf(err, "неверный STUDY_TIMEZONE %q", tz)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

// RequireJWT проверяет секреты токенов. Нужны только HTTP-серверу.
func (c *Config) RequireJWT() error {
	if len(c.AccessSecret) == 0 {
		return errors.Wrap(ErrMissingEnv, "JWT_ACCESS_SECRET")
	}
	if len(c.RefreshSecret) == 0 {
		return errors.Wrap(ErrMissingEnv, "JWT_REFRESH_SECRET")
	}
	return nil
}

// DSN собирает строку подключения к PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
