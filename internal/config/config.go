package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every setting the service recognizes. All values come from
// environment variables, with defaults matching a local development setup.
type Config struct {
	Port          string
	DBHost        string
	DBPort        int
	DBUser        string
	DBPassword    string
	DBName        string
	AppEnv        string
	CodespaceName string
	RabbitMQURL   string
}

// Load reads the configuration from the environment via Viper.
func Load() *Config {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "admin")
	viper.SetDefault("DB_PASSWORD", "admin123")
	viper.SetDefault("DB_NAME", "entidad_db")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CODESPACE_NAME", "local")
	// Empty URL disables event publishing entirely.
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		Port:          viper.GetString("PORT"),
		DBHost:        viper.GetString("DB_HOST"),
		DBPort:        viper.GetInt("DB_PORT"),
		DBUser:        viper.GetString("DB_USER"),
		DBPassword:    viper.GetString("DB_PASSWORD"),
		DBName:        viper.GetString("DB_NAME"),
		AppEnv:        viper.GetString("APP_ENV"),
		CodespaceName: viper.GetString("CODESPACE_NAME"),
		RabbitMQURL:   viper.GetString("RABBITMQ_URL"),
	}
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// ListenAddr returns the address for the HTTP server to bind.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}
