package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chatlytics/chatlytics-go/internal/logger"
	"github.com/chatlytics/chatlytics-go/pkg/chatlytics"
)

// Load reads client configuration from the environment. The API key is
// required, everything else falls back to the package defaults.
func Load() (chatlytics.Config, error) {
	apiKey := os.Getenv("CHATLYTICS_API_KEY")
	if apiKey == "" {
		return chatlytics.Config{}, fmt.Errorf("CHATLYTICS_API_KEY environment variable must be set")
	}

	return chatlytics.Config{
		APIKey:     apiKey,
		BaseURL:    getEnvOrDefault("CHATLYTICS_BASE_URL", chatlytics.DefaultBaseURL),
		Timeout:    getEnvAsDuration("CHATLYTICS_TIMEOUT", chatlytics.DefaultTimeout),
		MaxRetries: getEnvAsInt("CHATLYTICS_MAX_RETRIES", chatlytics.DefaultMaxRetries),
	}, nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid duration value, using default")
		return defaultValue
	}
	return value
}
