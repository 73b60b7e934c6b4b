// Package score blends social momentum with technical signals into the
// final ranking metric.
package score

import (
	"sort"

	"social-momentum-scanner/internal/types"
)

// Weights is the fixed, documented blend policy. Changing any weight
// changes every downstream ranking, so treat edits as versioned.
type Weights struct {
	Momentum          float64 `yaml:"momentum"`
	PriceMomentum     float64 `yaml:"price_momentum"`
	VolumeMomentum    float64 `yaml:"volume_momentum"`
	VolatilityPenalty float64 `yaml:"volatility_penalty"`
}

// DefaultWeights: 40% social momentum, 30% price momentum, 20% volume
// momentum, 10% volatility penalty.
var DefaultWeights = Weights{
	Momentum:          0.4,
	PriceMomentum:     0.3,
	VolumeMomentum:    0.2,
	VolatilityPenalty: 0.1,
}

// Combined computes the blended score for one symbol, floored at zero.
func Combined(stat types.AggregateStat, snap types.TechnicalSnapshot, w Weights) float64 {
	priceMomentum := clamp(snap.PriceChange30D*2, 0, 100)

	volumeMomentum := 0.0
	if snap.VolumeRatioPct != nil {
		volumeMomentum = clamp(*snap.VolumeRatioPct, 0, 100)
	}

	volatilityPenalty := 0.0
	if snap.VolatilityPct != nil {
		volatilityPenalty = *snap.VolatilityPct * 0.5
	}

	s := stat.MomentumScore*w.Momentum +
		priceMomentum*w.PriceMomentum +
		volumeMomentum*w.VolumeMomentum -
		volatilityPenalty*w.VolatilityPenalty

	if s < 0 {
		return 0
	}
	return s
}

// Rank pairs stats with their snapshots, scores each symbol, and returns
// the results sorted by combined score descending. Symbols without a
// snapshot are omitted: partial results beat aborting the run.
func Rank(stats []types.AggregateStat, snaps map[string]*types.TechnicalSnapshot, w Weights) []types.CombinedResult {
	results := make([]types.CombinedResult, 0, len(stats))
	for _, st := range stats {
		snap, ok := snaps[st.Symbol]
		if !ok || snap == nil {
			continue
		}
		results = append(results, types.CombinedResult{
			Symbol:        st.Symbol,
			Stat:          st,
			Snapshot:      *snap,
			CombinedScore: Combined(st, *snap, w),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CombinedScore != results[j].CombinedScore {
			return results[i].CombinedScore > results[j].CombinedScore
		}
		return results[i].Symbol < results[j].Symbol
	})
	return results
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
