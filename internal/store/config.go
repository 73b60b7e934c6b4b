package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Sources struct {
		Reddit struct {
			Enabled           bool     `yaml:"enabled"`
			BaseURL           string   `yaml:"base_url"`
			Communities       []string `yaml:"communities"`
			PostsPerCommunity int      `yaml:"posts_per_community"`
			UserAgent         string   `yaml:"user_agent"`
		} `yaml:"reddit"`
		File struct {
			Enabled bool   `yaml:"enabled"`
			Path    string `yaml:"path"`
		} `yaml:"file"`
	} `yaml:"sources"`

	Scan struct {
		TopK    int `yaml:"top_k"`
		Workers int `yaml:"workers"`
	} `yaml:"scan"`

	Quotes struct {
		BaseURL        string `yaml:"base_url"`
		Range          string `yaml:"range"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Rate           Rate   `yaml:"rate"`
	} `yaml:"quotes"`

	Verification struct {
		TimeoutSeconds int  `yaml:"timeout_seconds"`
		Rate           Rate `yaml:"rate"`
	} `yaml:"verification"`

	Indicators struct {
		SMAShort   int     `yaml:"sma_short"`
		SMALong    int     `yaml:"sma_long"`
		RSIPeriod  int     `yaml:"rsi_period"`
		BBWindow   int     `yaml:"bb_window"`
		BBStdDev   float64 `yaml:"bb_stddev"`
		RecentBars int     `yaml:"recent_volume_bars"`
	} `yaml:"indicators"`

	Scoring struct {
		Momentum          float64 `yaml:"weight_momentum"`
		PriceMomentum     float64 `yaml:"weight_price"`
		VolumeMomentum    float64 `yaml:"weight_volume"`
		VolatilityPenalty float64 `yaml:"weight_volatility_penalty"`
	} `yaml:"scoring"`

	Output struct {
		LogDir        string `yaml:"log_dir"`
		WriteCSV      bool   `yaml:"write_csv"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"output"`
}

// Rate describes a token bucket: burst tokens refilled one per interval.
type Rate struct {
	Burst      int `yaml:"burst"`
	IntervalMS int `yaml:"interval_ms"`
}

func (r Rate) Interval() time.Duration {
	return time.Duration(r.IntervalMS) * time.Millisecond
}

func (c *Config) Validate() error {
	if !c.Sources.Reddit.Enabled && !c.Sources.File.Enabled {
		return errors.New("at least one document source must be enabled")
	}
	if c.Sources.Reddit.Enabled && len(c.Sources.Reddit.Communities) == 0 {
		return errors.New("sources.reddit.communities cannot be empty")
	}
	if c.Sources.File.Enabled && c.Sources.File.Path == "" {
		return errors.New("sources.file.path cannot be empty")
	}
	if c.Scan.TopK <= 0 {
		return fmt.Errorf("scan.top_k must be positive, got %d", c.Scan.TopK)
	}
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive, got %d", c.Scan.Workers)
	}
	if c.Quotes.BaseURL == "" {
		return errors.New("quotes.base_url cannot be empty")
	}
	if c.Indicators.BBStdDev < 0 {
		return fmt.Errorf("indicators.bb_stddev cannot be negative, got %.2f", c.Indicators.BBStdDev)
	}
	for name, w := range map[string]float64{
		"scoring.weight_momentum":           c.Scoring.Momentum,
		"scoring.weight_price":              c.Scoring.PriceMomentum,
		"scoring.weight_volume":             c.Scoring.VolumeMomentum,
		"scoring.weight_volatility_penalty": c.Scoring.VolatilityPenalty,
	} {
		if w < 0 {
			return fmt.Errorf("%s cannot be negative, got %.2f", name, w)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}
