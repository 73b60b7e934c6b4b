package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"social-momentum-scanner/internal/collect"
	"social-momentum-scanner/internal/indicators"
	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/pipeline"
	"social-momentum-scanner/internal/quote"
	"social-momentum-scanner/internal/quote/quoteobs"
	"social-momentum-scanner/internal/ratelimit"
	"social-momentum-scanner/internal/resultlog"
	"social-momentum-scanner/internal/score"
	"social-momentum-scanner/internal/store"
	"social-momentum-scanner/internal/trace"
	"social-momentum-scanner/internal/verify"
)

func main() {
	_ = godotenv.Load()

	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = trace.Shutdown(shutdownCtx)
	}()

	registry, err := buildRegistry(cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build collector registry", err)
		os.Exit(1)
	}

	quoteClient := quoteobs.Wrap(quote.NewClient(quote.Params{
		BaseURL: cfg.Quotes.BaseURL,
		Range:   cfg.Quotes.Range,
		Timeout: time.Duration(cfg.Quotes.TimeoutSeconds) * time.Second,
	}))

	verifier := verify.New(
		quoteClient,
		ratelimit.New(cfg.Verification.Rate.Burst, cfg.Verification.Rate.Interval()),
		time.Duration(cfg.Verification.TimeoutSeconds)*time.Second,
	)

	engine := indicators.NewEngine(
		quoteClient,
		ratelimit.New(cfg.Quotes.Rate.Burst, cfg.Quotes.Rate.Interval()),
		time.Duration(cfg.Quotes.TimeoutSeconds)*time.Second,
		indicators.Config{
			SMAShort:   cfg.Indicators.SMAShort,
			SMALong:    cfg.Indicators.SMALong,
			RSIPeriod:  cfg.Indicators.RSIPeriod,
			BBWindow:   cfg.Indicators.BBWindow,
			BBStdDev:   cfg.Indicators.BBStdDev,
			RecentBars: cfg.Indicators.RecentBars,
		},
	)

	resultStore := resultlog.New(cfg.Output.LogDir)
	if err := resultStore.CompressOlder(cfg.Output.RetentionDays); err != nil {
		logger.ErrorWithErr(ctx, "Failed to compress old scan logs", err)
	}

	pipe := pipeline.New(pipeline.Params{
		Registry: registry,
		Verifier: verifier,
		Engine:   engine,
		Store:    resultStore,
		Weights:  weightsFrom(cfg),
		TopK:     cfg.Scan.TopK,
		Workers:  cfg.Scan.Workers,
		DocLimit: cfg.Sources.Reddit.PostsPerCommunity,
	})

	logger.Info(ctx, "Scan starting", "collectors", registry.Names(), "top_k", cfg.Scan.TopK)
	result, err := pipe.Run(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Scan aborted", err)
		os.Exit(1)
	}

	printReport(result)
	printSummary(result)

	if cfg.Output.WriteCSV && len(result.Ranked) > 0 {
		if p, err := resultStore.WriteCSV(result.ScanTime, result.Ranked); err == nil {
			fmt.Printf("CSV summary written: %s\n", p)
		} else {
			logger.ErrorWithErr(ctx, "Failed to write CSV summary", err)
		}
	}
	logger.Info(ctx, "Scan complete",
		"documents", result.DocumentCount, "ranked", len(result.Ranked), "saved", result.Saved)
}

func buildRegistry(cfg *store.Config) (*collect.Registry, error) {
	registry := collect.NewRegistry()

	if cfg.Sources.Reddit.Enabled {
		ua := cfg.Sources.Reddit.UserAgent
		if v := os.Getenv("REDDIT_USER_AGENT"); v != "" {
			ua = v
		}
		for _, community := range cfg.Sources.Reddit.Communities {
			c := collect.NewRedditCollector(collect.RedditParams{
				BaseURL:   cfg.Sources.Reddit.BaseURL,
				Community: community,
				UserAgent: ua,
			})
			if err := registry.Register(c); err != nil {
				return nil, err
			}
		}
	}
	if cfg.Sources.File.Enabled {
		if err := registry.Register(collect.NewFileCollector(cfg.Sources.File.Path)); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func weightsFrom(cfg *store.Config) score.Weights {
	w := score.Weights{
		Momentum:          cfg.Scoring.Momentum,
		PriceMomentum:     cfg.Scoring.PriceMomentum,
		VolumeMomentum:    cfg.Scoring.VolumeMomentum,
		VolatilityPenalty: cfg.Scoring.VolatilityPenalty,
	}
	if w == (score.Weights{}) {
		return score.DefaultWeights
	}
	return w
}
