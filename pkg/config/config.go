package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Google   GoogleConfig
	JWT      JWTConfig
	AI       AIConfig
	Stocks   StocksConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	FrontendURL    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

type AIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout time.Duration
}

type StocksConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// Missing .env is fine, environment variables are used directly (Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	aiTimeout, _ := strconv.Atoi(getEnv("AI_REQUEST_TIMEOUT", "30"))
	stockTimeout, _ := strconv.Atoi(getEnv("STOCK_REQUEST_TIMEOUT", "10"))

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5174,http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "5000"),
			ReadTimeout:    time.Duration(readTimeout) * time.Second,
			WriteTimeout:   time.Duration(writeTimeout) * time.Second,
			AllowedOrigins: origins,
			FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5174"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "financas"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("REDIRECT_URI", "http://localhost:5000/callback/google"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "dev-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		AI: AIConfig{
			APIKey:         getEnv("GOOGLE_API_KEY", getEnv("OPENAI_API_KEY", "")),
			BaseURL:        getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
			Model:          getEnv("AI_MODEL", "gemini-2.0-flash-lite"),
			RequestTimeout: time.Duration(aiTimeout) * time.Second,
		},
		Stocks: StocksConfig{
			APIKey:         getEnv("MASSIVE_API_KEY", ""),
			BaseURL:        getEnv("MASSIVE_API_BASE_URL", "https://api.massive.com"),
			RequestTimeout: time.Duration(stockTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
