package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeTesting     Mode = "testing"
	ModeProduction  Mode = "production"
)

const (
	StorageMemory    = "memory"
	StorageFirestore = "firestore"
)

// Config is read from SAFEHAVEN_* environment variables.
type Config struct {
	Environment Mode   `envconfig:"ENVIRONMENT" default:"development"`
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	KnowledgePath string `envconfig:"KNOWLEDGE_PATH" default:"knowledge_base.txt"`

	// Gemini: an API key selects the Gemini API; otherwise GCP project + location select Vertex AI.
	GoogleAPIKey string        `envconfig:"GOOGLE_API_KEY"`
	ModelName    string        `envconfig:"MODEL_NAME" default:"gemini-1.5-flash"`
	UseMockLLM   bool          `envconfig:"USE_MOCK_LLM" default:"false"`
	LLMTimeout   time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	GCPProjectID string        `envconfig:"GCP_PROJECT"`
	GCPLocation  string        `envconfig:"GCP_LOCATION" default:"us-central1"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"` // "memory" o "firestore"
	// FirebaseConfig is a service-account JSON document.
	FirebaseConfig string        `envconfig:"FIREBASE_CONFIG"`
	AppID          string        `envconfig:"APP_ID"`
	FeedCacheTTL   time.Duration `envconfig:"FEED_CACHE_TTL" default:"1s"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

// Load reads an optional .env file, then the environment, and validates the result.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("SAFEHAVEN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	// plain GOOGLE_API_KEY is accepted for compatibility with Google tooling
	if cfg.GoogleAPIKey == "" {
		cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations and required combinations.
func (c *Config) Validate() error {
	switch c.Environment {
	case ModeDevelopment, ModeTesting, ModeProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case StorageMemory:
	case StorageFirestore:
		if c.FirebaseConfig == "" && c.GCPProjectID == "" {
			return fmt.Errorf("SAFEHAVEN_FIREBASE_CONFIG or SAFEHAVEN_GCP_PROJECT is required for the firestore storage backend")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND: %s", c.StorageBackend)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.FeedCacheTTL <= 0 {
		return fmt.Errorf("FEED_CACHE_TTL must be positive")
	}
	return nil
}

// NewForTesting returns a config that needs no external services.
func NewForTesting() *Config {
	return &Config{
		Environment:    ModeTesting,
		Port:           8080,
		LogLevel:       "debug",
		KnowledgePath:  "knowledge_base.txt",
		ModelName:      "gemini-1.5-flash",
		UseMockLLM:     true,
		LLMTimeout:     5 * time.Second,
		GCPLocation:    "us-central1",
		StorageBackend: StorageMemory,
		FeedCacheTTL:   time.Second,
		SessionTTL:     time.Hour,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == ModeDevelopment
}

// HTTPAddr returns the HTTP server address.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
