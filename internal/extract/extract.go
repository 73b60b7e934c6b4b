// Package extract pulls candidate ticker symbols out of free text.
package extract

import "regexp"

var tickerPattern = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

// Tickers returns the distinct candidate symbols appearing in text, in
// order of first appearance, excluding denylisted tokens. Text with no
// qualifying tokens yields an empty slice, never an error.
func Tickers(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, tok := range tickerPattern.FindAllString(text, -1) {
		if Excluded(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
