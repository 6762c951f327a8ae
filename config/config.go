package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is the placeholder signing key; only development may run with it.
const DefaultJWTSecret = "your-secret-key"

var ErrDefaultJWTSecret = errors.New("JWT_SECRET must be set outside development")

type Config struct {
	Env      string
	LogLevel string
	Server   Server
	Database Database
	Auth     Auth
	Seed     bool
}

type Server struct {
	Port           string
	AllowedOrigins []string
}

type Database struct {
	Driver       string // "postgres" or "sqlite"
	Host         string
	Port         string
	User         string
	Password     string `json:"-"`
	Name         string
	SSLMode      string
	Path         string // sqlite file, ":memory:" allowed
	MaxOpenConns int
}

type Auth struct {
	JWTSecret  string `json:"-"`
	TokenTTL   time.Duration
	BcryptCost int
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_NAME", "education")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_PATH", "education.db")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("SEED_SAMPLE_DATA", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Env = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.Seed = viper.GetBool("SEED_SAMPLE_DATA")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.AllowedOrigins = splitCSV(viper.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Database.MaxOpenConns = viper.GetInt("DATABASE_MAX_OPEN_CONNS")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = viper.GetDuration("JWT_TTL")
	config.Auth.BcryptCost = viper.GetInt("BCRYPT_COST")

	if !config.IsDevelopment() && (config.Auth.JWTSecret == "" || config.Auth.JWTSecret == DefaultJWTSecret) {
		log.Error().Str("env", config.Env).Msg("Refusing to start with the placeholder JWT secret")
		return nil, ErrDefaultJWTSecret
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
