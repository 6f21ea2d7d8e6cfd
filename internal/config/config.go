package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all environment-sourced settings. There is no on-disk
// state; a restart resets everything, including rate-limit quotas.
type Config struct {
	Addr           string
	LogLevel       string
	SwaggerEnabled bool
	RequestTimeout time.Duration

	GitHubToken  string
	GitHubAPIURL string

	RedisURL string

	AIProvider          string
	AIAPIKey            string
	AIBaseURL           string
	AIModel             string
	AIThinking          bool
	AIReasoningEffort   string
	AIRequestsPerMinute int

	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() Config {
	return Config{
		Addr:           getString("CODEREV_ADDR", ":8080"),
		LogLevel:       getString("CODEREV_LOG_LEVEL", "info"),
		SwaggerEnabled: getBool("CODEREV_SWAGGER", false),
		RequestTimeout: getSeconds("CODEREV_REQUEST_TIMEOUT", 120*time.Second),

		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),

		RedisURL: os.Getenv("REDIS_URL"),

		AIProvider:          getString("CODEREV_AI_PROVIDER", "openai"),
		AIAPIKey:            os.Getenv("CODEREV_AI_API_KEY"),
		AIBaseURL:           os.Getenv("CODEREV_AI_BASE_URL"),
		AIModel:             os.Getenv("CODEREV_AI_MODEL"),
		AIThinking:          getBool("CODEREV_AI_THINKING", false),
		AIReasoningEffort:   os.Getenv("CODEREV_AI_REASONING_EFFORT"),
		AIRequestsPerMinute: getInt("CODEREV_AI_RPM", 10),

		RateLimitEnabled:  getBool("CODEREV_RATE_LIMIT_ENABLED", true),
		RateLimitRequests: getInt("CODEREV_RATE_LIMIT", 10),
		RateLimitWindow:   getSeconds("CODEREV_RATE_WINDOW", 60*time.Second),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getSeconds(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
