package fetch

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config controls the wiki extractor. Values come from the environment
// (optionally via a .env file) with working defaults, so `duneplan
// fetch` runs with no setup.
type Config struct {
	BaseURL     string
	CategoryURL string
	UserAgent   string
	HTTPTimeout time.Duration
	// Delay between page requests, to stay polite to the wiki.
	RequestDelay time.Duration
}

const (
	defaultBaseURL   = "https://awakening.wiki"
	defaultUserAgent = "DunePlanDataExtractor/1.0 (github.com/gizmo3030/duneplan)"
)

// ConfigFromEnv loads the extractor configuration. A .env file in the
// working directory is honored when present; a missing one is fine.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUserAgent,
		HTTPTimeout:  30 * time.Second,
		RequestDelay: time.Second,
	}
	if v := os.Getenv("PLANNER_WIKI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PLANNER_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("PLANNER_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("PLANNER_REQUEST_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.RequestDelay = d
		}
	}
	cfg.CategoryURL = cfg.BaseURL + "/Category:Placeables"
	return cfg
}
