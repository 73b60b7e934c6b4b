package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	c := &Config{}
	c.Sources.Reddit.Enabled = true
	c.Sources.Reddit.BaseURL = "https://old.reddit.com"
	c.Sources.Reddit.Communities = []string{"stocks"}
	c.Scan.TopK = 10
	c.Scan.Workers = 4
	c.Quotes.BaseURL = "https://query1.finance.yahoo.com"
	return c
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestValidateNoSources(t *testing.T) {
	c := validConfig()
	c.Sources.Reddit.Enabled = false
	if err := c.Validate(); err == nil {
		t.Error("Expected error with no sources enabled")
	}
}

func TestValidateRedditWithoutCommunities(t *testing.T) {
	c := validConfig()
	c.Sources.Reddit.Communities = nil
	if err := c.Validate(); err == nil {
		t.Error("Expected error for reddit without communities")
	}
}

func TestValidateFileSourceNeedsPath(t *testing.T) {
	c := validConfig()
	c.Sources.File.Enabled = true
	if err := c.Validate(); err == nil {
		t.Error("Expected error for file source without path")
	}
}

func TestValidateScanBounds(t *testing.T) {
	c := validConfig()
	c.Scan.TopK = 0
	if err := c.Validate(); err == nil {
		t.Error("Expected error for zero top_k")
	}

	c = validConfig()
	c.Scan.Workers = -1
	if err := c.Validate(); err == nil {
		t.Error("Expected error for negative workers")
	}
}

func TestValidateNegativeWeight(t *testing.T) {
	c := validConfig()
	c.Scoring.Momentum = -0.5
	if err := c.Validate(); err == nil {
		t.Error("Expected error for negative weight")
	}
}

func TestRateInterval(t *testing.T) {
	r := Rate{Burst: 2, IntervalMS: 500}
	if r.Interval() != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", r.Interval())
	}
}

func TestLoadConfig(t *testing.T) {
	yaml := `
sources:
  reddit:
    enabled: true
    base_url: "https://old.reddit.com"
    communities: [wallstreetbets, stocks]
    posts_per_community: 25
    user_agent: "test/1.0"
scan:
  top_k: 5
  workers: 2
quotes:
  base_url: "https://query1.finance.yahoo.com"
  range: "3mo"
  rate:
    burst: 2
    interval_ms: 500
scoring:
  weight_momentum: 0.4
  weight_price: 0.3
  weight_volume: 0.2
  weight_volatility_penalty: 0.1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.Sources.Reddit.Communities) != 2 {
		t.Errorf("Expected 2 communities, got %d", len(cfg.Sources.Reddit.Communities))
	}
	if cfg.Scan.TopK != 5 {
		t.Errorf("Expected top_k 5, got %d", cfg.Scan.TopK)
	}
	if cfg.Quotes.Rate.Burst != 2 {
		t.Errorf("Expected burst 2, got %d", cfg.Quotes.Rate.Burst)
	}
	if cfg.Scoring.PriceMomentum != 0.3 {
		t.Errorf("Expected price weight 0.3, got %f", cfg.Scoring.PriceMomentum)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scan:\n  top_k: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation error for zero top_k")
	}
}
