package neobookings

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is the Neobookings test environment endpoint.
const DefaultBaseURL = "https://ws-test.neobookings.com/api/v2"

// DefaultTimeout bounds each HTTP call when NEO_API_TIMEOUT is not set.
const DefaultTimeout = 30 * time.Second

// Config holds the process-wide connection settings for the Neobookings API.
// It is read once at startup and treated as read-only afterwards.
type Config struct {
	ClientCode string
	SystemCode string
	Username   string
	Password   string
	BaseURL    string
	Timeout    time.Duration
}

// ConfigFromEnv builds a Config from NEO_* environment variables, applying
// the documented defaults for the non-secret fields.
func ConfigFromEnv() Config {
	return Config{
		ClientCode: envOr("NEO_CLIENT_CODE", "neo"),
		SystemCode: envOr("NEO_SYSTEM_CODE", "XML"),
		Username:   os.Getenv("NEO_USERNAME"),
		Password:   os.Getenv("NEO_PASSWORD"),
		BaseURL:    envOr("NEO_API_BASE_URL", DefaultBaseURL),
		Timeout:    envTimeout("NEO_API_TIMEOUT", DefaultTimeout),
	}
}

// Validate checks that the fields required to reach the API are present.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("neobookings: config: base URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("neobookings: config: username is required (NEO_USERNAME)")
	}
	if c.Password == "" {
		return fmt.Errorf("neobookings: config: password is required (NEO_PASSWORD)")
	}
	return nil
}

// Credentials returns the wire form of the configured API credentials.
func (c Config) Credentials() Credentials {
	return Credentials{
		ClientCode: c.ClientCode,
		SystemCode: c.SystemCode,
		Username:   c.Username,
		Password:   c.Password,
	}
}

// Credentials is the credential block embedded in authentication requests.
type Credentials struct {
	ClientCode string `json:"ClientCode"`
	SystemCode string `json:"SystemCode"`
	Username   string `json:"Username"`
	Password   string `json:"Password"`
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envTimeout(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
