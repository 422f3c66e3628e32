package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	AppEnv string `env:"APP_ENV" env-default:"development"`
	Port   string `env:"PORT" env-default:"8080"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" env-required:"true"`
	GeminiModel  string `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`

	// Maps and Unsplash keys are optional: without them routes, the map
	// center and stop backgrounds are simply absent.
	MapsAPIKey        string `env:"GOOGLE_MAPS_API_KEY"`
	UnsplashAccessKey string `env:"UNSPLASH_ACCESS_KEY"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads the .env file (if any) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
