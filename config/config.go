package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	Timezone          string `mapstructure:"TIMEZONE"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Reservation booking API.
	ReservationAPIURL    string `mapstructure:"RESERVATION_API_URL"`
	ReservationAPIKey    string `mapstructure:"RESERVATION_API_KEY"`
	ReservationTimeoutMs int    `mapstructure:"RESERVATION_TIMEOUT_MS"`
	ReservationRetries   int    `mapstructure:"RESERVATION_MAX_RETRIES"`

	// Concierge (LLM) configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	StaffAPIKey  string `mapstructure:"STAFF_API_KEY"`

	// Live context sources.
	BeerAPIURL string `mapstructure:"BEER_API_URL"`

	// Session storage. SESSION_BACKEND is "memory" or "redis".
	SessionBackend    string `mapstructure:"SESSION_BACKEND"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Context refresh worker.
	RefreshIntervalMinutes int `mapstructure:"REFRESH_INTERVAL_MINUTES"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIMEZONE", "Europe/Berlin")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("RESERVATION_API_URL", "")
	viper.SetDefault("RESERVATION_API_KEY", "")
	viper.SetDefault("RESERVATION_TIMEOUT_MS", 8000)
	viper.SetDefault("RESERVATION_MAX_RETRIES", 2)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("STAFF_API_KEY", "")
	viper.SetDefault("BEER_API_URL", "")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("REFRESH_INTERVAL_MINUTES", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
