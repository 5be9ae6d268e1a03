package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Embedding EmbeddingConfig
	Interview InterviewConfig
	Audio     AudioConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type EmbeddingConfig struct {
	Model string
	Dim   int
}

type InterviewConfig struct {
	MaxExchanges int
	MinExchanges int
}

type AudioConfig struct {
	MaxRealtimeSize int64
	DefaultLanguage string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Embedding: EmbeddingConfig{
			Model: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			Dim:   getEnvAsInt("EMBEDDING_DIM", 768),
		},
		Interview: InterviewConfig{
			MaxExchanges: getEnvAsInt("MAX_EXCHANGES", 8),
			MinExchanges: getEnvAsInt("MIN_EXCHANGES", 3),
		},
		Audio: AudioConfig{
			MaxRealtimeSize: getEnvAsInt64("MAX_AUDIO_SIZE", 10485760),
			DefaultLanguage: getEnv("AUDIO_LANGUAGE", "ko"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
