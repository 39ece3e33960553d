// Package config loads configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds runtime settings.
type Config struct {
	OpenAIAPIKey string
	OMDbAPIKey   string
	LLMModel     string
	CatalogPath  string
	MemoryPath   string
	Temperature  float64
	StepBudget   int
	HistoryLimit int

	// Fuzzy resolution policy. The weights and the acceptance threshold are
	// tunable, not fixed semantics.
	FuzzyEditWeight  float64
	FuzzyTokenWeight float64
	FuzzyMetaWeight  float64
	FuzzyThreshold   float64
}

// Load reads env vars, applies defaults, and validates required fields.
func Load() Config {
	cfg := Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OMDbAPIKey:   os.Getenv("OMDB_API_KEY"),
		LLMModel:     os.Getenv("OPENAI_MODEL"),
		CatalogPath:  os.Getenv("KINOAGENT_DB"),
		MemoryPath:   os.Getenv("KINOAGENT_MEMORY"),
	}

	cfg.Temperature = getEnvFloat("KINOAGENT_TEMPERATURE", 0.2)
	cfg.StepBudget = getEnvInt("KINOAGENT_STEP_BUDGET", 8)
	cfg.HistoryLimit = getEnvInt("KINOAGENT_HISTORY_LIMIT", 12)
	cfg.FuzzyEditWeight = getEnvFloat("KINOAGENT_FUZZY_EDIT_WEIGHT", 0.6)
	cfg.FuzzyTokenWeight = getEnvFloat("KINOAGENT_FUZZY_TOKEN_WEIGHT", 0.25)
	cfg.FuzzyMetaWeight = getEnvFloat("KINOAGENT_FUZZY_META_WEIGHT", 0.15)
	cfg.FuzzyThreshold = getEnvFloat("KINOAGENT_FUZZY_THRESHOLD", 0.45)

	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o-mini"
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "data/imdb_top_1000.db"
	}
	if cfg.MemoryPath == "" {
		cfg.MemoryPath = "memory_store.json"
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
