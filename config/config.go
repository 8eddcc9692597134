package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DriverRealtimeDB expects database.rules.json to be deployed; queries on
	// unindexed children fall back to full reads.
	DriverRealtimeDB = "rtdb"
	DriverFirestore  = "firestore"
	DriverMemory     = "memory"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	StoreDriver string

	FirebaseCredentialsFile string
	FirebaseDatabaseURL     string
	FirebaseProjectID       string

	CORSAllowOrigins []string
}

// Load reads .env (if any) and then the process environment. Values already set in
// the environment win over the file, which is godotenv's default behaviour.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(), nil
}

func FromEnv() *Config {
	credentials := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if credentials == "" {
		credentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	return &Config{
		Port:                    getenv("PORT", "8080"),
		AppEnv:                  getenv("APP_ENV", "development"),
		LogLevel:                getenv("LOG_LEVEL", "info"),
		StoreDriver:             strings.ToLower(getenv("STORE_DRIVER", DriverRealtimeDB)),
		FirebaseCredentialsFile: credentials,
		FirebaseDatabaseURL:     os.Getenv("FIREBASE_DATABASE_URL"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		CORSAllowOrigins:        splitList(os.Getenv("CORS_ALLOW_ORIGINS")),
	}
}

// Validate reports every missing setting for the selected store driver.
func (c *Config) Validate() error {
	var problems []string

	switch c.StoreDriver {
	case DriverRealtimeDB:
		if c.FirebaseCredentialsFile == "" {
			problems = append(problems, "FIREBASE_CREDENTIALS_FILE is not set")
		}
		if c.FirebaseDatabaseURL == "" {
			problems = append(problems, "FIREBASE_DATABASE_URL is not set")
		}
	case DriverFirestore:
		if c.FirebaseCredentialsFile == "" {
			problems = append(problems, "FIREBASE_CREDENTIALS_FILE is not set")
		}
	case DriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
