package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything one digest run needs. It is built once per
// invocation and passed down by value reference; nothing reads the
// environment after Load returns.
type Config struct {
	// Caption generation credentials. Anthropic wins when both are set;
	// with neither, captions come from the rule table only.
	OpenAIAPIKey    string
	AnthropicAPIKey string

	MaxItems int
	Timezone string
	Location *time.Location

	Keywords []string
	FeedURLs []string

	SlackWebhookURL string

	Port        string
	FrontendURL string
}

const (
	defaultMaxItems = 10
	defaultTimezone = "Asia/Tokyo"
	defaultKeywords = "SALESCORE"
	defaultPort     = "8080"
)

func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		MaxItems:        defaultMaxItems,
		Timezone:        defaultTimezone,
		SlackWebhookURL: os.Getenv("APP_SLACK_WEBHOOK_URL"),
		Port:            defaultPort,
		FrontendURL:     os.Getenv("FRONTEND_URL"),
	}

	if v := os.Getenv("APP_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxItems = n
		}
	}

	if tz := os.Getenv("APP_TZ"); tz != "" {
		cfg.Timezone = tz
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	cfg.Keywords = splitList(getEnvOrDefault("APP_KEYWORDS", defaultKeywords), ",")
	cfg.FeedURLs = splitList(os.Getenv("APP_RSS_URLS"), "\n")

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	return cfg, nil
}

// splitList splits on sep, trims each part and drops empties.
func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
