package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Booking  BookingRules
}

type DatabaseConfig struct {
	Driver   string // postgres, mysql or sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Sync     bool // run AutoMigrate at startup
	Logging  bool // log generated SQL
}

type ServerConfig struct {
	Port string
}

// BookingRules gates validation the source system deliberately left out.
// Both checks default to off to preserve the original behavior.
type BookingRules struct {
	ValidateDates bool // reject bookings with end_date before start_date
	CheckOverlap  bool // reject bookings overlapping an existing one for the same car
}

// Load reads configuration from the process environment, with defaults
// for a local development database. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "car_rental"),
			Sync:     getEnvAsBool("DB_SYNC", true),
			Logging:  getEnvAsBool("DB_LOGGING", false),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Booking: BookingRules{
			ValidateDates: getEnvAsBool("BOOKING_VALIDATE_DATES", false),
			CheckOverlap:  getEnvAsBool("BOOKING_CHECK_OVERLAP", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
