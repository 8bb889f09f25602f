package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	MediaRoot  string
	ServerAddr string
	GinMode    string
}

func Load() *Config {
	// A missing .env file is fine; real env vars take precedence anyway.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "recipeuser"),
		DBPassword: getEnv("DB_PASSWORD", "recipepassword"),
		DBName:     getEnv("DB_NAME", "recipe_app"),
		MediaRoot:  getEnv("MEDIA_ROOT", "media"),
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
