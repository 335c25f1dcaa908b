package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, the ST API connection, the export file, and
// the matching thresholds.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// API contains the ST API connection settings
	API struct {
		// BaseURL is the root of the ST v1 REST API
		BaseURL string `env:"ST_BASE_URL" env-default:"https://api.solidarity.tech/v1/" yaml:"baseUrl"`
		// Key is the bearer token used to authenticate against the API
		Key string `env:"ST_API_KEY" yaml:"key"`
		// PageSize is the page size used when exhausting paginated listings
		PageSize int `env:"ST_API_PAGE_SIZE" env-default:"100" yaml:"pageSize"`
		// Timeout bounds a single HTTP request to the API
		Timeout time.Duration `env:"ST_API_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// RetryAttempts is the number of times a rate-limited or failed request is retried
		RetryAttempts int `env:"ST_API_RETRY_ATTEMPTS" env-default:"3" yaml:"retryAttempts"`
		// RetryBackoff is the fixed delay between retry attempts
		RetryBackoff time.Duration `env:"ST_API_RETRY_BACKOFF" env-default:"1s" yaml:"retryBackoff"`
	} `yaml:"api"`

	// Export contains settings for reading the static JSON export
	Export struct {
		// Path is the location of the ST JSON export file
		Path string `env:"EXPORT_PATH" env-default:"export.json" yaml:"path"`
	} `yaml:"export"`

	// Matcher contains the fuzzy-matching thresholds; tier confidences are
	// fixed constants in the matching engine
	Matcher struct {
		// MinNameOverlap is the minimum name token overlap ratio for a fuzzy candidate
		MinNameOverlap float64 `env:"MATCHER_MIN_NAME_OVERLAP" env-default:"0.5" yaml:"minNameOverlap"`
		// FuzzyFloor is the confidence assigned at exactly MinNameOverlap
		FuzzyFloor float64 `env:"MATCHER_FUZZY_FLOOR" env-default:"0.3" yaml:"fuzzyFloor"`
		// FuzzyCeiling is the confidence assigned at full name overlap
		FuzzyCeiling float64 `env:"MATCHER_FUZZY_CEILING" env-default:"0.8" yaml:"fuzzyCeiling"`
	} `yaml:"matcher"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
