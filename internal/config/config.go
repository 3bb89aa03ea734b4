// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// Server
	Port     string
	AppEnv   string
	LogLevel string

	// CORS
	CORSOrigins []string

	// Redis (optional) - backs the brief-parse cache and rate limiter only.
	// Scheduling itself never touches Redis: the scheduler is a pure
	// function and its results are never persisted or cached.
	RedisURL string

	// NL text collaborators
	SpacyModel string

	// Scheduler
	SolverTimeBudget  time.Duration
	DefaultGapMinutes int
}

// Load loads configuration from environment variables.
// It first attempts to load a .env file from the current directory (optional).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CORSOrigins: getList("CORS_ORIGINS", []string{"*"}),

		RedisURL: getEnv("REDIS_URL", ""),

		SpacyModel: getEnv("SPACY_MODEL", "en_core_web_sm"),

		SolverTimeBudget:  getDuration("SOLVER_TIME_BUDGET", 30*time.Second),
		DefaultGapMinutes: getInt("DEFAULT_GAP_MINUTES", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}
