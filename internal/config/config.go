package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	FrontendURL  string
}

// Load reads the environment (a .env file is honored if present) and
// validates every field before anything else starts. All failing fields
// are reported in a single error so a broken deployment is fixed in one
// pass instead of one restart per variable.
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		Port:         3333,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
	}

	var bad []string

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			bad = append(bad, "PORT: must be a valid port number")
		} else {
			c.Port = port
		}
	}

	if c.DatabaseURL == "" {
		bad = append(bad, "DATABASE_URL: required")
	} else if err := checkURL(c.DatabaseURL); err != nil {
		bad = append(bad, "DATABASE_URL: "+err.Error())
	}

	if c.GeminiAPIKey == "" {
		bad = append(bad, "GEMINI_API_KEY: required")
	}

	if c.FrontendURL == "" {
		bad = append(bad, "FRONTEND_URL: required")
	} else if err := checkURL(c.FrontendURL); err != nil {
		bad = append(bad, "FRONTEND_URL: "+err.Error())
	}

	if len(bad) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(bad, "; "))
	}
	return c, nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
