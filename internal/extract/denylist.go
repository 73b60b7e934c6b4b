package extract

// excludedWords filters common false positives out of candidate tickers:
// English words, trading slang, exchange and index tokens, calendar tokens.
// Read-only after package init.
var excludedWords = makeSet([]string{
	// Single letters
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",

	// Common abbreviations & trading terms
	"DD", "YOLO", "WSB", "CEO", "CFO", "IPO", "ETF", "ATH", "ATL",
	"IMO", "FYI", "FOMO", "TA", "PE", "EPS", "AI", "ML", "AR", "VR",
	"ICO", "NFT", "EOD", "EOW", "AH", "ITM", "OTM", "ATM",
	"IV", "HV", "VIX", "SPY", "QQQ", "DIA", "IWM",

	// Exchanges & organizations
	"NYSE", "NASDAQ", "SEC", "IRS", "FDA", "FBI", "CIA", "FED",
	"FOMC", "OPEC", "IMF", "WHO", "UN", "GDP", "CPI", "PPI",

	// Countries/regions
	"US", "UK", "EU", "IT", "FR", "DE", "JP", "CN", "CA", "AU",
	"IN", "BR", "RU", "KR", "MX", "ES", "NL", "CH", "SE", "NO",
	"USA", "COVID",

	// Time/date
	"AM", "PM", "EST", "PST", "CST", "MST", "GMT", "UTC",
	"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN",
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",

	// Common words that look like tickers
	"OK", "LOL", "OMG", "WTF", "EDIT", "TLDR", "TL", "DR", "PS",
	"OR", "AND", "THE", "FOR", "NOW", "NEW", "GET", "JUST", "NEXT",
	"LIKE", "WHEN", "WHAT", "ALL", "OUT", "SO", "NO", "YES", "GOOD",
	"CAN", "DO", "GO", "NOT", "BUT", "ARE", "WAS", "IS", "BE", "BEING",
	"TO", "OF", "ON", "AT", "BY", "AS", "AN", "IF",
	"MY", "HE", "SHE", "WE", "ME", "HIM", "HER", "WHO", "WHY", "THEM",
	"HOW", "VERY", "TOO", "ONLY", "BOTH", "EACH", "FEW", "MORE", "MOST",
	"SOME", "ANY", "MANY", "MUCH", "SUCH", "SAME", "THESE", "THOSE",
	"FROM", "INTO", "THAN", "THEN", "ONCE", "HERE", "THERE", "WHERE",
	"ALSO", "BEEN", "HAVE", "HAS", "HAD", "DOES", "DID", "WILL", "WOULD",
	"COULD", "SHOULD", "MIGHT", "MUST", "CANT", "MADE", "MAKE", "NEED",
	"OWN", "SAID", "SEE", "SEEM", "SINCE", "STILL", "TAKE", "WANT",
	"WELL", "WERE", "WHICH", "WHILE", "THAT", "THIS", "THUS", "THEY",
	"DONT", "WONT", "ISNT", "ARENT", "WASNT", "WERENT",

	// Internet slang
	"AMA", "ELI5", "TIL", "NSFW", "SFW", "OP", "OC", "FTFY",
	"IIRC", "AFAIK", "IMHO", "SMH", "TBH", "LPT", "EV", "UP",

	// Financial terms
	"ROI", "ROE", "FCF", "EBITDA", "YOY", "QOQ",
	"DIV", "YTD", "USD", "EUR", "GBP", "JPY", "RMB", "IRA", "PT",

	// Board-specific slang
	"MOON", "HOLD", "BUY", "SELL", "CALL", "PUT", "BULL", "BEAR",
	"LONG", "SHORT", "PUMP", "DUMP", "DIP", "RIP", "TANK", "MEGA",
	"HUGE", "BIG", "GAIN", "LOSS", "WIN", "FAIL", "EPIC", "LIFE",
	"HELP", "MOVE", "PLAY", "WEEK", "YEAR", "LAST", "BEST", "WORST",
	"EVER", "BACK", "EVEN", "DOWN", "TILL", "OVER", "UNDER", "ABOUT",
})

func makeSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Excluded reports whether a token is on the denylist.
func Excluded(token string) bool {
	_, ok := excludedWords[token]
	return ok
}
