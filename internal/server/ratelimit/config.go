package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Policy names referenced by route wiring.
const (
	PolicyDefault = "default"
	PolicyBurst   = "burst"
)

// DefaultSweepInterval bounds the window store's memory.
const DefaultSweepInterval = 5 * time.Minute

// DefaultPolicies returns the two stock policies: a broad per-window limit
// that counts every request, and a tight burst limit that refunds failed
// requests.
func DefaultPolicies() []Policy {
	return []Policy{
		{
			Name:        PolicyDefault,
			Window:      getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", 15*time.Minute),
			MaxRequests: getEnvInt("RATE_LIMIT_DEFAULT_MAX", 100),
			CountFailed: true,
		},
		{
			Name:        PolicyBurst,
			Window:      getEnvDuration("RATE_LIMIT_BURST_WINDOW", time.Minute),
			MaxRequests: getEnvInt("RATE_LIMIT_BURST_MAX", 5),
			CountFailed: false,
		},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
