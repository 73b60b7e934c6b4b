// Package aggregate folds per-document ticker mentions into per-symbol
// statistics and ranks them by momentum.
package aggregate

import (
	"sort"

	"social-momentum-scanner/internal/types"
)

// Mention is one classified document together with the distinct symbols
// extracted from it.
type Mention struct {
	Doc     types.Document
	Symbols []string
	Label   types.SentimentLabel
}

type accumulator struct {
	stat    types.AggregateStat
	sources map[string]struct{}
}

// Fold builds one AggregateStat per distinct symbol across the batch.
// Each document counts once per symbol it mentions. The result is sorted
// by momentum score descending, then mention count descending, then
// symbol ascending, so ordering is fully deterministic.
func Fold(mentions []Mention) []types.AggregateStat {
	accs := make(map[string]*accumulator)
	var order []string

	for _, m := range mentions {
		for _, sym := range m.Symbols {
			acc, ok := accs[sym]
			if !ok {
				acc = &accumulator{
					stat:    types.AggregateStat{Symbol: sym},
					sources: make(map[string]struct{}),
				}
				accs[sym] = acc
				order = append(order, sym)
			}
			apply(acc, m)
		}
	}

	stats := make([]types.AggregateStat, 0, len(order))
	for _, sym := range order {
		stats = append(stats, finalize(accs[sym]))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.MomentumScore != b.MomentumScore {
			return a.MomentumScore > b.MomentumScore
		}
		if a.MentionCount != b.MentionCount {
			return a.MentionCount > b.MentionCount
		}
		return a.Symbol < b.Symbol
	})
	return stats
}

func apply(acc *accumulator, m Mention) {
	st := &acc.stat
	st.MentionCount++
	st.TotalEngagement += m.Doc.Engagement
	st.TotalComments += m.Doc.CommentCount
	acc.sources[m.Doc.Source] = struct{}{}

	switch m.Label {
	case types.SentimentBullish:
		st.BullishCount++
	case types.SentimentBearish:
		st.BearishCount++
	default:
		st.NeutralCount++
	}

	// Highest engagement wins; first seen wins on ties.
	if st.BestDoc == nil || m.Doc.Engagement > st.BestDoc.Engagement {
		st.BestDoc = &types.DocumentRef{
			Title:      m.Doc.Title,
			Source:     m.Doc.Source,
			Engagement: m.Doc.Engagement,
			Permalink:  m.Doc.Permalink,
		}
	}
}

func finalize(acc *accumulator) types.AggregateStat {
	st := acc.stat

	st.Sources = make([]string, 0, len(acc.sources))
	for src := range acc.sources {
		st.Sources = append(st.Sources, src)
	}
	sort.Strings(st.Sources)

	mentions := st.MentionCount
	if mentions > 0 {
		st.AvgEngagement = float64(st.TotalEngagement) / float64(mentions)
		st.BullishPct = float64(st.BullishCount) / float64(mentions) * 100
		st.BearishPct = float64(st.BearishCount) / float64(mentions) * 100
	}

	st.MomentumScore = MomentumScore(mentions, st.BullishCount, len(st.Sources))
	return st
}

// MomentumScore rewards symbols mentioned often, with favorable sentiment,
// across many independent sources:
//
//	mentions x (bullish / max(mentions, 1)) x distinct sources
func MomentumScore(mentions, bullish, sources int) float64 {
	denom := mentions
	if denom < 1 {
		denom = 1
	}
	ratio := float64(bullish) / float64(denom)
	return float64(mentions) * ratio * float64(sources)
}
