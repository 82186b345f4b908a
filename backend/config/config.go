package config

import (
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the civicflow backend
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	DBPingMaxWaitSec     int

	// Server configuration
	Port string

	// Logging
	LogLevel  string
	LogFormat string

	// RabbitMQ report feed, disabled when AMQPURL is empty
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	// Optional YAML file replacing the built-in service directory
	ServicesSeedFile string
}

// Load loads configuration from environment variables, reading .env first if present
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using system environment variables")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBName:     getEnv("DB_NAME", "civicflow"),

		DBMaxOpenConns:       getIntEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       getIntEnv("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetimeMin: getIntEnv("DB_CONN_MAX_LIFETIME_MIN", 5),
		DBPingMaxWaitSec:     getIntEnv("DB_PING_MAX_WAIT_SEC", 60),

		Port: getEnv("PORT", "8000"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		AMQPURL:        getEnv("AMQP_URL", ""),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "civicflow"),
		AMQPRoutingKey: getEnv("AMQP_ROUTING_KEY", "report.created"),

		ServicesSeedFile: getEnv("SERVICES_SEED_FILE", ""),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets a positive integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
