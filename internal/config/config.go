package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Alerts   AlertConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	NatsEnabled        bool
	SessionTTLMinutes  int
	OtelEndpoint       string
	OtelEnabled        bool
}

type DatabaseConfig struct {
	// Postgres DSN for the consult transcript audit log. Empty disables
	// persistence; the engine itself is fully in-memory.
	Connection string
}

type RedisConfig struct {
	URL     string
	Enabled bool
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	LLMProvider   string // "groq", "ollama" or "none"
	LLMModel      string
	LLMBaseURL    string
	GroqAPIKey    string
	RemoteTimeout time.Duration
}

type AlertConfig struct {
	// Where emergency alerts are mailed. Empty disables the mailer.
	CareTeamEmail string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			NatsEnabled:        getEnvAsBool("NATS_ENABLED", false),
			SessionTTLMinutes:  getEnvAsInt("SESSION_TTL_MINUTES", 60),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", "redis://localhost:6379"),
			Enabled: getEnvAsBool("REDIS_SESSIONS_ENABLED", false),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "JeevanCare"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "groq"),
			LLMModel:      getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
			LLMBaseURL:    getEnv("LLM_BASE_URL", ""),
			GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
			RemoteTimeout: time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Alerts: AlertConfig{
			CareTeamEmail: getEnv("CARE_TEAM_EMAIL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
