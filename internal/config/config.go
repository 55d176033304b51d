package config

import (
	"errors"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the geocoord CLI.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - ProviderType: The type of geocoding provider to use (google, nominatim).
// - APIKey: The API key for accessing external services (required for Google).
// - RateLimit: Requests per second shared by all workers (Google only).
// - Workers: The number of concurrent geocoding requests.
// - SphereRadius: Radius of the sphere geocoded addresses are placed on.
// - Timeout: Upper bound for a whole survey.
// - MetricsFile: Where to dump metrics after the run, empty to skip.
type Config struct {
	Env          string
	ProviderType string
	APIKey       string
	RateLimit    int
	Workers      int
	SphereRadius float64
	Timeout      time.Duration
	MetricsFile  string
}

// MustLoad reads .env, an optional geocoord.yaml from the working directory
// and GEOCOORD_* environment variables, in increasing order of precedence.
// It panics if a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("geocoord")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("GEOCOORD")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("provider_type", "nominatim")
	v.SetDefault("provider_key", "")
	v.SetDefault("rate_limit", "50")
	v.SetDefault("workers", "4")
	v.SetDefault("sphere_radius", "6371.0088") // mean Earth radius, km
	v.SetDefault("timeout", "1m")
	v.SetDefault("metrics_file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("failed to read configuration file")
		}
	}

	rateLimit, err := strconv.Atoi(v.GetString("rate_limit"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer type")
	}

	workers, err := strconv.Atoi(v.GetString("workers"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer type")
	}

	radius, err := strconv.ParseFloat(v.GetString("sphere_radius"), 64)
	if err != nil || radius < 0 {
		panic("failed to parse sphere radius from configuration, must be a non-negative number")
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		panic("failed to parse timeout from configuration")
	}

	return &Config{
		Env:          v.GetString("env"),
		ProviderType: v.GetString("provider_type"),
		APIKey:       v.GetString("provider_key"),
		RateLimit:    rateLimit,
		Workers:      workers,
		SphereRadius: radius,
		Timeout:      timeout,
		MetricsFile:  v.GetString("metrics_file"),
	}
}
