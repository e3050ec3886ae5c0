package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string
	RedisAddr     string
	RabbitMQURL   string
	EventExchange string
	Port          string
}

// Load reads configuration from the environment, with .env as a convenience
// for local development. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		MySQLUser:     getEnvOrDefault("MYSQL_USER", "root"),
		MySQLPassword: getEnvOrDefault("MYSQL_PASSWORD", ""),
		MySQLHost:     getEnvOrDefault("MYSQL_HOST", "localhost"),
		MySQLPort:     getEnvOrDefault("MYSQL_PORT", "3306"),
		MySQLDatabase: getEnvOrDefault("MYSQL_DATABASE", "tableside"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RabbitMQURL:   getEnvOrDefault("RABBITMQ_URL", ""),
		EventExchange: getEnvOrDefault("EVENT_EXCHANGE", "tableside.events"),
		Port:          getEnvOrDefault("PORT", "8080"),
	}
}

// DSN builds the MySQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDatabase)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
