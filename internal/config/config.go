package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAppName          = "KronBank ATM"
	defaultAppEnv           = "development"
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultMaxLoginAttempts = 3

	maxLoginAttemptsEnvVar       = "MAX_LOGIN_ATTEMPTS"
	invalidCardUsesAttemptEnvVar = "INVALID_CARD_USES_ATTEMPT"
	demoSeedEnvVar               = "DEMO_SEED"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName   string
	AppEnv    string
	LogLevel  string
	LogFormat string

	// MaxLoginAttempts bounds how many authentication tries a single login
	// session gets before the flow gives up. Distinct from the per-card
	// wrong-PIN ceiling that blocks the card itself.
	MaxLoginAttempts int

	// InvalidCardUsesAttempt decides whether a malformed or unknown card
	// number consumes one of the session's login attempts.
	InvalidCardUsesAttempt bool

	// DemoSeed controls whether the demo cards and accounts are loaded at
	// startup.
	DemoSeed bool
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:                getEnv("APP_NAME", defaultAppName),
		AppEnv:                 getEnv("APP_ENV", defaultAppEnv),
		LogLevel:               strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogFormat:              strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
		MaxLoginAttempts:       defaultMaxLoginAttempts,
		InvalidCardUsesAttempt: true,
		DemoSeed:               true,
	}

	if v := os.Getenv(maxLoginAttemptsEnvVar); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", maxLoginAttemptsEnvVar, err)
		}
		if attempts < 1 {
			return Config{}, fmt.Errorf("invalid %s: must be at least 1", maxLoginAttemptsEnvVar)
		}
		cfg.MaxLoginAttempts = attempts
	}

	if v := os.Getenv(invalidCardUsesAttemptEnvVar); v != "" {
		flag, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", invalidCardUsesAttemptEnvVar, err)
		}
		cfg.InvalidCardUsesAttempt = flag
	}

	if v := os.Getenv(demoSeedEnvVar); v != "" {
		flag, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", demoSeedEnvVar, err)
		}
		cfg.DemoSeed = flag
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
