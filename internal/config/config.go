package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Agent   AgentConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

// BackendConfig points at the agent-management service that owns agents,
// sources and embeddings.
type BackendConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// AgentConfig names the session agent. Its full default configuration
// (model, embedding, toolset, system prompt) lives in internal/constant.
type AgentConfig struct {
	Name string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	// The presentation origin doubles as the CORS default; an explicit
	// CORS_ALLOWED_ORIGINS overrides it.
	clientURL := getEnv("CLIENT_URL", "http://localhost:5173")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          clientURL,
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", clientURL),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("AGENT_BACKEND_URL", "http://localhost:8283"),
			Token:          getEnv("AGENT_BACKEND_TOKEN", ""),
			TimeoutSeconds: getEnvAsInt("AGENT_BACKEND_TIMEOUT_SECONDS", 120),
		},
		Agent: AgentConfig{
			Name: getEnv("AGENT_NAME", "document-assistant"),
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
