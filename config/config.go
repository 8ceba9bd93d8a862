package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	StoreBackend      string `mapstructure:"STORE_BACKEND"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration. An empty address disables the distributed cell lock
	// and the reminder queue.
	RedisAddr            string        `mapstructure:"REDIS_ADDR"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB          int           `mapstructure:"REDIS_LOCK_DB"`
	RedisReminderQueueDB int           `mapstructure:"REDIS_REMINDER_QUEUE_DB"`
	CellLockTTL          time.Duration `mapstructure:"CELL_LOCK_TTL"`

	// Reminders.
	ReminderTimezone string `mapstructure:"REMINDER_TIMEZONE"`

	// Presentation.
	CurrencySymbol string `mapstructure:"CURRENCY_SYMBOL"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "dairy")
	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LOCK_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("CELL_LOCK_TTL", "5s")
	viper.SetDefault("REMINDER_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("CURRENCY_SYMBOL", "₹")

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

// UsesMemoryStore reports whether repositories should be kept in process memory.
func UsesMemoryStore() bool {
	return AppConfig.StoreBackend == "memory"
}

// ReminderLocation returns the timezone reminder times are expressed in.
func ReminderLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.ReminderTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
