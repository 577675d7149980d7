package config

import "os"

// PlaceholderKey is a fail-safe for local runs only. Requests made with it
// fail with a configuration error instead of reaching the API.
const PlaceholderKey = "local-dev-placeholder-key"

const (
	summarizeModelURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"
	speechModelURL    = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-tts:generateContent"
)

type Config struct {
	Port              string
	APIKey            string
	SummarizeEndpoint string
	SpeechEndpoint    string
}

// Load reads the environment. A missing GEMINI_API_KEY degrades to the
// placeholder so the process still starts; callers should warn about it.
func Load() *Config {
	cfg := &Config{
		Port:              os.Getenv("PORT"),
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		SummarizeEndpoint: summarizeModelURL,
		SpeechEndpoint:    speechModelURL,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = PlaceholderKey
	}
	return cfg
}

// KeyConfigured reports whether a real credential was provided.
func (c *Config) KeyConfigured() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderKey
}
