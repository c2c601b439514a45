package config

import (
	"os"
	"strconv"
	"time"

	"sapar/internal/storage"
)

// Config содержит конфигурацию приложения
type Config struct {
	LogLevel  string
	LogFormat string

	// Бэкенд хранилища: memory, file или redis
	StorageBackend string
	StoragePath    string

	Redis storage.RedisConfig

	// Искусственные задержки "ИИ"-операций
	SuggestDelay   time.Duration
	ItineraryDelay time.Duration
	PaymentDelay   time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StoragePath:    getEnv("STORAGE_PATH", "data/planner.json"),

		Redis: storage.RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Key:      getEnv("STORAGE_KEY", "tripPlannerDB"),
		},

		SuggestDelay:   time.Duration(getEnvInt("SUGGEST_DELAY_MS", 1000)) * time.Millisecond,
		ItineraryDelay: time.Duration(getEnvInt("ITINERARY_DELAY_MS", 2000)) * time.Millisecond,
		PaymentDelay:   time.Duration(getEnvInt("PAYMENT_DELAY_MS", 500)) * time.Millisecond,
	}
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленное значение переменной окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
