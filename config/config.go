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
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Auth. When AUTH_ENABLED is false the admin endpoints are open; the
	// dashboard contract itself carries no auth headers.
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// Engine thresholds.
	CO2ThresholdPPM     float64 `mapstructure:"CO2_THRESHOLD_PPM"`
	NoShowGraceMin      int     `mapstructure:"NO_SHOW_GRACE_MIN"`
	DeviceStaleMin      int     `mapstructure:"DEVICE_STALE_MIN"`
	SweepIntervalSec    int     `mapstructure:"SWEEP_INTERVAL_SEC"`
	SnapshotIntervalSec int     `mapstructure:"SNAPSHOT_INTERVAL_SEC"`

	// Redis configuration (snapshot persistence).
	SnapshotEnabled bool   `mapstructure:"SNAPSHOT_ENABLED"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int    `mapstructure:"REDIS_DB"`
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
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("CO2_THRESHOLD_PPM", 800.0)
	viper.SetDefault("NO_SHOW_GRACE_MIN", 15)
	viper.SetDefault("DEVICE_STALE_MIN", 10)
	viper.SetDefault("SWEEP_INTERVAL_SEC", 60)
	viper.SetDefault("SNAPSHOT_INTERVAL_SEC", 300)
	viper.SetDefault("SNAPSHOT_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

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
