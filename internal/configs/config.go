package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// HTTPConfig holds the REST server settings.
type HTTPConfig struct {
	Port string
}

// AffiliateConfig holds the per-platform tracking identifiers. An empty
// value means listings of that platform are returned without rewriting.
type AffiliateConfig struct {
	AmazonTag      string
	FlipkartID     string
	MyntraCampaign string
}

// FetcherConfig tunes the outbound fetching and extraction behavior.
type FetcherConfig struct {
	TimeoutSeconds        int
	MaxResultsPerPlatform int
	PreDelayEnabled       bool
	// SyntheticFallbackEnabled turns the degraded-mode placeholder listings
	// back on. Off by default; callers then see a "no_listings" status
	// instead of fabricated results.
	SyntheticFallbackEnabled bool
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	HTTP         HTTPConfig
	Affiliate    AffiliateConfig
	Fetcher      FetcherConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig loads the configuration from the environment, optionally
// seeded from a .env file. A missing .env file is fine in deployed
// environments where variables come from the runtime.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: could not load .env file (path: %v): %v\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "flag-me-backend")
	cfg.HTTP.Port = getEnvAsString("HTTP_PORT", "8000")

	cfg.Affiliate.AmazonTag = os.Getenv("AMAZON_AFFILIATE_TAG")
	cfg.Affiliate.FlipkartID = os.Getenv("FLIPKART_AFFILIATE_ID")
	cfg.Affiliate.MyntraCampaign = os.Getenv("MYNTRA_UTM_CAMPAIGN")

	cfg.Fetcher.TimeoutSeconds = getEnvAsInt("FETCH_TIMEOUT_SECONDS", 30)
	cfg.Fetcher.MaxResultsPerPlatform = getEnvAsInt("MAX_RESULTS_PER_PLATFORM", 10)
	cfg.Fetcher.PreDelayEnabled = getEnvAsBool("SEARCH_PRE_DELAY_ENABLED", true)
	cfg.Fetcher.SyntheticFallbackEnabled = getEnvAsBool("SYNTHETIC_FALLBACK_ENABLED", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnvAsString reads an environment variable or returns the default.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int or returns the default,
// logging when the variable exists but cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads an environment variable as bool or returns the default.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
