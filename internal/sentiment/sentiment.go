// Package sentiment assigns a bullish/bearish/neutral label to a document.
package sentiment

import (
	"strings"

	"social-momentum-scanner/internal/types"
)

// Fixed phrase tables. Matching is substring containment on case-folded
// text, so multi-word phrases like "diamond hands" match anywhere.
var bullishPhrases = []string{
	"moon", "rocket", "buy", "calls", "bullish", "pump",
	"rally", "squeeze", "tendies", "gains", "up", "long",
	"green", "breakout", "support", "diamond hands", "hodl",
	"to the moon", "undervalued", "great buy",
}

var bearishPhrases = []string{
	"crash", "dump", "puts", "bearish", "short", "down",
	"red", "sell", "drop", "fall", "tank", "rekt",
	"rug pull", "bag holder", "dead cat", "overvalued",
}

// Counts returns the number of bullish and bearish phrases present in text.
func Counts(text string) (bullish, bearish int) {
	lower := strings.ToLower(text)
	for _, p := range bullishPhrases {
		if strings.Contains(lower, p) {
			bullish++
		}
	}
	for _, p := range bearishPhrases {
		if strings.Contains(lower, p) {
			bearish++
		}
	}
	return bullish, bearish
}

// Classify labels a document's text. Bullish or bearish wins only on a
// strict majority of phrase hits; ties, including empty text, are neutral.
func Classify(text string) types.SentimentLabel {
	if text == "" {
		return types.SentimentNeutral
	}
	bullish, bearish := Counts(text)
	switch {
	case bullish > bearish:
		return types.SentimentBullish
	case bearish > bullish:
		return types.SentimentBearish
	default:
		return types.SentimentNeutral
	}
}
