package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DataBaseConfig struct {
	URL string
}

type SeedConfig struct {
	// RandomSeed pins the generated fixture content for reproducible demo
	// databases; 0 means seed from the clock.
	RandomSeed int64
}

type Config struct {
	Env      string
	Database DataBaseConfig
	Seed     SeedConfig
	IsDev    bool
}

func validateEnv() {
	environmentVariables := []string{
		"ENV",
		"DB_URL",
	}
	for _, env := range environmentVariables {
		if os.Getenv(env) == "" {
			log.Fatalf("Environment variable %s is not set", env)
		}
	}
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	validateEnv()

	var randomSeed int64
	if raw := os.Getenv("SEED_RANDOM_SEED"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("SEED_RANDOM_SEED must be an integer, got %q", raw)
		}
		randomSeed = parsed
	}

	return &Config{
		Env: os.Getenv("ENV"),
		Database: DataBaseConfig{
			URL: os.Getenv("DB_URL"),
		},
		Seed: SeedConfig{
			RandomSeed: randomSeed,
		},
		IsDev: os.Getenv("ENV") == "development",
	}
}
