package config

import (
	"os"
	"strconv"
	"time"

	"chernotour/internal/cache"
	"chernotour/internal/database"
	"chernotour/internal/messaging"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	StaticDir      string
	RequestTimeout time.Duration

	// Performance monitoring
	PprofEnabled bool
	PprofPort    string

	Database database.Config
	Cache    cache.Config
	NATS     messaging.Config
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	// .env подхватывается, если лежит рядом с бинарником
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		StaticDir:      getEnv("STATIC_DIR", "web"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		PprofEnabled: getEnv("PPROF_ENABLED", "false") == "true",
		PprofPort:    getEnv("PPROF_PORT", "6060"),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "chernotour"),
			Password:           getEnv("DB_PASSWORD", "chernotour123"),
			DBName:             getEnv("DB_NAME", "chernotour"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Cache: cache.Config{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			ToursTTL: time.Duration(getEnvInt("REDIS_TOURS_TTL_SEC", 60)) * time.Second,
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", ""),
			ClusterID: getEnv("NATS_CLUSTER_ID", "chernotour"),
			ClientID:  getEnv("NATS_CLIENT_ID", "chernotour-api"),
		},
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
