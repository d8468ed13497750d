package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Store  Store
	Auth   Auth
	SMTP   SMTP
}

type Server struct {
	Host           string
	Port           string
	Env            string
	AllowedOrigins []string
}

type Store struct {
	Backend string // "memory", "sqlite" or "postgres"
	DSN     string
	Path    string // For SQLite: file path
}

type Auth struct {
	JWTSecret string
}

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	backend := getEnv("STORE_BACKEND", "memory")
	dsn, dbPath := buildDSN(backend)

	var origins []string
	if raw := getEnv("ALLOWED_ORIGINS", ""); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return &Config{
		Server: Server{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("ENV", "development"),
			AllowedOrigins: origins,
		},
		Store: Store{
			Backend: backend,
			DSN:     dsn,
			Path:    dbPath,
		},
		Auth: Auth{
			JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-prod"),
		},
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),
		},
	}, nil
}

func buildDSN(backend string) (string, string) {
	if backend == "postgres" {
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "culture_quest")
		sslMode := getEnv("DB_SSLMODE", "disable")

		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, sslMode,
		)
		return dsn, ""
	}

	if backend == "sqlite" {
		dbPath := getEnv("SQLITE_PATH", "./data/culture_quest.db")
		dsn := dbPath + "?mode=rwc&cache=shared&timeout=5000"
		return dsn, dbPath
	}

	// memory backend needs no DSN
	return "", ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
