package types

import "time"

// SentimentLabel classifies a single document's tone.
type SentimentLabel string

const (
	SentimentBullish SentimentLabel = "bullish"
	SentimentBearish SentimentLabel = "bearish"
	SentimentNeutral SentimentLabel = "neutral"
)

// Document is one unit of social content supplied by a collector.
// Immutable once created.
type Document struct {
	Source       string    `json:"source"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	Engagement   int       `json:"engagement"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	Permalink    string    `json:"permalink,omitempty"`
}

// Text returns the full searchable text of the document.
func (d Document) Text() string {
	if d.Body == "" {
		return d.Title
	}
	return d.Title + " " + d.Body
}

// DocumentRef points at the best single document for a symbol.
type DocumentRef struct {
	Title      string `json:"title"`
	Source     string `json:"source"`
	Engagement int    `json:"engagement"`
	Permalink  string `json:"permalink,omitempty"`
}

// AggregateStat holds per-symbol statistics folded over a document batch.
// Built once by the aggregator and read-only afterwards.
type AggregateStat struct {
	Symbol          string   `json:"symbol"`
	MentionCount    int      `json:"mention_count"`
	TotalEngagement int      `json:"total_engagement"`
	TotalComments   int      `json:"total_comments"`
	BullishCount    int      `json:"bullish_count"`
	BearishCount    int      `json:"bearish_count"`
	NeutralCount    int      `json:"neutral_count"`
	Sources         []string `json:"sources"` // distinct, sorted

	BestDoc *DocumentRef `json:"best_doc,omitempty"`

	// Derived metrics
	AvgEngagement float64 `json:"avg_engagement"`
	BullishPct    float64 `json:"bullish_pct"`
	BearishPct    float64 `json:"bearish_pct"`
	MomentumScore float64 `json:"momentum_score"`
}

// Bar is one daily price bar, chronological within a series.
type Bar struct {
	Ts     int64   `json:"ts"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Quote bundles a price history with the scalar fields the quote
// collaborator supplies alongside it. Optional scalars are nil when the
// collaborator has no data for them.
type Quote struct {
	Symbol             string
	RegularMarketPrice float64
	High52W            *float64
	Low52W             *float64
	MarketCap          *float64
	PERatio            *float64
	Sector             string
	Industry           string
	Bars               []Bar
}

// TechnicalSnapshot is the indicator set computed from one price history.
// Indicators whose window exceeds the available data are nil.
type TechnicalSnapshot struct {
	Symbol         string  `json:"symbol"`
	CurrentPrice   float64 `json:"current_price"`
	PriceChange30D float64 `json:"price_change_30d"`

	SMA20             *float64 `json:"sma_20,omitempty"`
	SMA50             *float64 `json:"sma_50,omitempty"`
	DistanceFromSMA20 *float64 `json:"distance_from_sma20,omitempty"`

	BBUpper    *float64 `json:"bb_upper,omitempty"`
	BBLower    *float64 `json:"bb_lower,omitempty"`
	BBPosition *float64 `json:"bb_position,omitempty"`

	RSI        *float64 `json:"rsi,omitempty"`
	Oversold   bool     `json:"is_oversold"`
	Overbought bool     `json:"is_overbought"`

	AtLowerBand bool `json:"at_lower_bb"`
	AtUpperBand bool `json:"at_upper_bb"`

	VolumeRatioPct *float64 `json:"volume_ratio_pct,omitempty"`
	AvgVolume      *float64 `json:"avg_volume,omitempty"`
	VolatilityPct  *float64 `json:"volatility_pct,omitempty"`

	High52W         *float64 `json:"high_52w,omitempty"`
	Low52W          *float64 `json:"low_52w,omitempty"`
	RangePosition52 *float64 `json:"range_position_52w,omitempty"`

	MarketCap *float64 `json:"market_cap,omitempty"`
	PERatio   *float64 `json:"pe_ratio,omitempty"`
	Sector    string   `json:"sector,omitempty"`
	Industry  string   `json:"industry,omitempty"`
}

// CombinedResult merges a symbol's social statistics with its technical
// snapshot under one final score. A ranked slice of these is the scanner's
// output; ordering is part of the contract.
type CombinedResult struct {
	Symbol        string            `json:"symbol"`
	Stat          AggregateStat     `json:"stat"`
	Snapshot      TechnicalSnapshot `json:"snapshot"`
	CombinedScore float64           `json:"combined_score"`
}
