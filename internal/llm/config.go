package llm

import "time"

// DefaultTimeout bounds every external call. Timeouts are surfaced as
// transient failures and never retried automatically.
const DefaultTimeout = 60 * time.Second

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the provider settings for one client.
type Config struct {
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// DefaultConfig returns the stock Gemini configuration. Temperature stays
// low for consistent instruction text.
func DefaultConfig() Config {
	return Config{
		Model:       DefaultModel,
		Temperature: 0.3,
		Timeout:     DefaultTimeout,
	}
}
