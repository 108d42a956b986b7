// Package config loads the application configuration from defaults, an optional
// YAML file, a .env file, environment variables and command-line flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the current
// directory or its parent, if one exists. Variables already set in the
// environment are not overwritten. It returns the file that was loaded,
// or an empty string when none was found.
func LoadEnv() (string, error) {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return "", nil
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		return envFile, err
	}
	return envFile, nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
