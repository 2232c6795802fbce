// Package config loads process configuration from the environment and
// sets up the service logger.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration for the service and CLI binaries.
// Engine rubric weights are configured separately via a YAML file; this
// struct only covers process-level concerns.
type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	DBPath       string
	ReportDir    string
	RubricPath   string
	LLMProvider  string
	LLMModel     string
	LLMAPIKey    string
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8080"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")

	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/matchengine.log"),
		DBPath:       getenv("DB_PATH", "data/suppliers.db"),
		ReportDir:    getenv("REPORT_DIR", "output"),
		RubricPath:   getenv("RUBRIC_CONFIG", ""),
		LLMProvider:  getenv("LLM_PROVIDER", "openai"),
		LLMModel:     getenv("LLM_MODEL", ""),
		LLMAPIKey:    getenv("LLM_API_KEY", ""),
	}
}

// Addr returns the listen address for the HTTP service.
func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
