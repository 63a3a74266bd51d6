package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if len(config.Sources.RootURLs) != 2 {
		t.Errorf("Expected 2 default root URLs, got %d", len(config.Sources.RootURLs))
	}

	if config.Output.BaseDirectory != "./output" {
		t.Errorf("Expected default output directory to be ./output, got %s", config.Output.BaseDirectory)
	}

	if config.Download.ConcurrentDownloads != 1 {
		t.Errorf("Expected default concurrent downloads to be 1, got %d", config.Download.ConcurrentDownloads)
	}

	if config.Download.AssetExtension != ".png" {
		t.Errorf("Expected default asset extension to be .png, got %s", config.Download.AssetExtension)
	}

	if config.RateLimit.RequestsPerMinute != 0 {
		t.Errorf("Expected rate limiting to be disabled by default, got %d", config.RateLimit.RequestsPerMinute)
	}

	if config.HTTP.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default request timeout to be 30s, got %v", config.HTTP.RequestTimeout)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("LOGOSCRAPER_ROOT_URLS", "https://example.com/a, https://example.com/b")
	os.Setenv("LOGOSCRAPER_USER_AGENT", "test-agent")
	os.Setenv("LOGOSCRAPER_REQUEST_TIMEOUT", "10s")
	os.Setenv("LOGOSCRAPER_REQUESTS_PER_MINUTE", "30")
	os.Setenv("LOGOSCRAPER_OUTPUT_DIR", "/tmp/test-logos")
	os.Setenv("LOGOSCRAPER_CONCURRENT_DOWNLOADS", "5")
	os.Setenv("LOGOSCRAPER_LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("LOGOSCRAPER_ROOT_URLS")
		os.Unsetenv("LOGOSCRAPER_USER_AGENT")
		os.Unsetenv("LOGOSCRAPER_REQUEST_TIMEOUT")
		os.Unsetenv("LOGOSCRAPER_REQUESTS_PER_MINUTE")
		os.Unsetenv("LOGOSCRAPER_OUTPUT_DIR")
		os.Unsetenv("LOGOSCRAPER_CONCURRENT_DOWNLOADS")
		os.Unsetenv("LOGOSCRAPER_LOG_LEVEL")
	}()

	config := DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	if len(config.Sources.RootURLs) != 2 || config.Sources.RootURLs[0] != "https://example.com/a" {
		t.Errorf("Expected root URLs from env, got %v", config.Sources.RootURLs)
	}

	if config.HTTP.UserAgent != "test-agent" {
		t.Errorf("Expected user agent to be test-agent, got %s", config.HTTP.UserAgent)
	}

	if config.HTTP.RequestTimeout != 10*time.Second {
		t.Errorf("Expected request timeout to be 10s, got %v", config.HTTP.RequestTimeout)
	}

	if config.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("Expected requests per minute to be 30, got %d", config.RateLimit.RequestsPerMinute)
	}

	if config.Output.BaseDirectory != "/tmp/test-logos" {
		t.Errorf("Expected output directory to be /tmp/test-logos, got %s", config.Output.BaseDirectory)
	}

	if config.Download.ConcurrentDownloads != 5 {
		t.Errorf("Expected concurrent downloads to be 5, got %d", config.Download.ConcurrentDownloads)
	}

	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level to be debug, got %s", config.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
sources:
  root_urls:
    - https://www.flashscore.com/football/europe
output:
  base_directory: ./europe-logos
download:
  concurrent_downloads: 2
  asset_extension: .png
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config := DefaultConfig()
	if err := config.LoadFromFile(path); err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if len(config.Sources.RootURLs) != 1 || config.Sources.RootURLs[0] != "https://www.flashscore.com/football/europe" {
		t.Errorf("Expected root URLs from file, got %v", config.Sources.RootURLs)
	}

	if config.Output.BaseDirectory != "./europe-logos" {
		t.Errorf("Expected output directory from file, got %s", config.Output.BaseDirectory)
	}

	if config.Download.ConcurrentDownloads != 2 {
		t.Errorf("Expected concurrent downloads from file, got %d", config.Download.ConcurrentDownloads)
	}
}

func TestLoadFromFileMissingIsNotAnError(t *testing.T) {
	config := DefaultConfig()
	if err := config.LoadFromFile(""); err != nil {
		t.Errorf("Expected missing config file to be tolerated, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no sources", func(c *Config) { c.Sources.RootURLs = nil }},
		{"relative root URL", func(c *Config) { c.Sources.RootURLs = []string{"flashscore.com/football"} }},
		{"empty user agent", func(c *Config) { c.HTTP.UserAgent = "" }},
		{"zero timeout", func(c *Config) { c.HTTP.RequestTimeout = 0 }},
		{"negative rate limit", func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }},
		{"zero workers", func(c *Config) { c.Download.ConcurrentDownloads = 0 }},
		{"too many workers", func(c *Config) { c.Download.ConcurrentDownloads = 11 }},
		{"empty extension", func(c *Config) { c.Download.AssetExtension = "" }},
		{"empty output dir", func(c *Config) { c.Output.BaseDirectory = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			if err := config.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	config := DefaultConfig()
	config.MergeCommandLineFlags(map[string]interface{}{
		"output":          "./flags-output",
		"concurrent":      4,
		"rate-limit":      120,
		"request-timeout": 5 * time.Second,
		"log-level":       "warn",
	})

	if config.Output.BaseDirectory != "./flags-output" {
		t.Errorf("Expected output directory from flags, got %s", config.Output.BaseDirectory)
	}
	if config.Download.ConcurrentDownloads != 4 {
		t.Errorf("Expected concurrent downloads from flags, got %d", config.Download.ConcurrentDownloads)
	}
	if config.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("Expected rate limit from flags, got %d", config.RateLimit.RequestsPerMinute)
	}
	if config.HTTP.RequestTimeout != 5*time.Second {
		t.Errorf("Expected request timeout from flags, got %v", config.HTTP.RequestTimeout)
	}
	if config.Logging.Level != "warn" {
		t.Errorf("Expected log level from flags, got %s", config.Logging.Level)
	}
}
