package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort       string `mapstructure:"APP_PORT"`
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	SessionTTL    int    `mapstructure:"SESSION_TTL_HOURS"`

	// Redis configuration for the session token store.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Booking policy configuration.
	BookingWindowDays   int      `mapstructure:"BOOKING_WINDOW_DAYS"`
	OpeningHour         int      `mapstructure:"OPENING_HOUR"`
	ClosingHour         int      `mapstructure:"CLOSING_HOUR"`
	BlockedRoomKeywords []string `mapstructure:"BLOCKED_ROOM_KEYWORDS"`
	BlockedWeekday      int      `mapstructure:"BLOCKED_WEEKDAY"` // time.Weekday value, Monday = 1
}

var AppConfig Config

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
	viper.SetDefault("API_BASE_URL", "https://api-pemda.vercel.app")
	viper.SetDefault("SESSION_TTL_HOURS", 12)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("BOOKING_WINDOW_DAYS", 7)
	viper.SetDefault("OPENING_HOUR", 7)
	viper.SetDefault("CLOSING_HOUR", 17)
	viper.SetDefault("BLOCKED_ROOM_KEYWORDS", []string{"pengawas sd", "elementary school supervisory"})
	viper.SetDefault("BLOCKED_WEEKDAY", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
