// Package pipeline wires the scan stages together: collect, extract and
// classify, aggregate, verify, snapshot, score, persist.
package pipeline

import (
	"context"
	"sync"
	"time"

	"social-momentum-scanner/internal/aggregate"
	"social-momentum-scanner/internal/collect"
	"social-momentum-scanner/internal/extract"
	"social-momentum-scanner/internal/indicators"
	"social-momentum-scanner/internal/interfaces"
	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/score"
	"social-momentum-scanner/internal/sentiment"
	"social-momentum-scanner/internal/types"
	"social-momentum-scanner/internal/verify"
)

// Params assembles a pipeline from its collaborators.
type Params struct {
	Registry *collect.Registry
	Verifier *verify.Verifier
	Engine   *indicators.Engine
	Store    interfaces.ResultStore // optional
	Weights  score.Weights
	TopK     int // verified symbols to carry forward
	Workers  int // parallel document workers
	DocLimit int // per-collector document cap
}

type Pipeline struct {
	params Params
}

// Result is the output of one scan.
type Result struct {
	ScanTime      time.Time
	DocumentCount int
	Stats         []types.AggregateStat
	Ranked        []types.CombinedResult
	Saved         int
}

func New(params Params) *Pipeline {
	if params.TopK <= 0 {
		params.TopK = 10
	}
	if params.Workers <= 0 {
		params.Workers = 4
	}
	return &Pipeline{params: params}
}

// Run executes one full scan. Failures of individual symbols or sources
// degrade to omissions; only a cancelled context aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	op := logger.StartOperation(ctx, "pipeline.Run")
	ctx = op.GetContext()

	result := &Result{ScanTime: time.Now().UTC()}

	docs := p.params.Registry.CollectAll(ctx, p.params.DocLimit)
	result.DocumentCount = len(docs)
	if err := ctx.Err(); err != nil {
		op.EndWithError(err)
		return nil, err
	}

	mentions := p.mapDocuments(ctx, docs)
	result.Stats = aggregate.Fold(mentions)
	logger.Info(ctx, "Aggregated ticker mentions",
		"documents", len(docs), "symbols", len(result.Stats))

	verified := p.params.Verifier.TopK(ctx, result.Stats, p.params.TopK)
	if err := ctx.Err(); err != nil {
		op.EndWithError(err)
		return nil, err
	}

	snaps := p.buildSnapshots(ctx, verified)
	result.Ranked = score.Rank(verified, snaps, p.params.Weights)

	for _, res := range result.Ranked {
		logger.Signal(ctx, res.Symbol, res.CombinedScore, res.Stat.MomentumScore,
			"mentions", res.Stat.MentionCount, "sources", len(res.Stat.Sources))
	}

	if p.params.Store != nil {
		saved, err := p.params.Store.Save(ctx, result.ScanTime, result.Ranked)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to persist scan results", err)
		}
		result.Saved = saved
	}

	op.End("documents", result.DocumentCount, "ranked", len(result.Ranked))
	return result, nil
}

// mapDocuments runs extraction and classification per document on a
// bounded worker pool. Each document is independent; the reduce phase
// stays single-threaded in aggregate.Fold.
func (p *Pipeline) mapDocuments(ctx context.Context, docs []types.Document) []aggregate.Mention {
	out := make([]aggregate.Mention, len(docs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.params.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				text := docs[i].Text()
				out[i] = aggregate.Mention{
					Doc:     docs[i],
					Symbols: extract.Tickers(text),
					Label:   sentiment.Classify(text),
				}
			}
		}()
	}

feed:
	for i := range docs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	mentions := out[:0]
	for _, m := range out {
		if len(m.Symbols) > 0 {
			mentions = append(mentions, m)
		}
	}
	return mentions
}

// buildSnapshots fetches one technical snapshot per verified symbol. A
// symbol whose history cannot be fetched is dropped from the ranking.
func (p *Pipeline) buildSnapshots(ctx context.Context, stats []types.AggregateStat) map[string]*types.TechnicalSnapshot {
	snaps := make(map[string]*types.TechnicalSnapshot, len(stats))
	for _, st := range stats {
		if ctx.Err() != nil {
			break
		}
		snap, err := p.params.Engine.Snapshot(ctx, st.Symbol)
		if err != nil {
			logger.ErrorWithErr(ctx, "Snapshot unavailable, omitting symbol", err,
				"symbol", st.Symbol)
			continue
		}
		snaps[st.Symbol] = snap
	}
	return snaps
}
