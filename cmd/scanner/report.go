package main

import (
	"fmt"
	"strings"

	"social-momentum-scanner/internal/pipeline"
	"social-momentum-scanner/internal/types"
)

const line = "══════════════════════════════════════════════════════════════════"

func printReport(result *pipeline.Result) {
	fmt.Println(line)
	fmt.Println("                 COMBINED RANKING & RECOMMENDATIONS")
	fmt.Println(line)
	fmt.Printf("Scan Time:        %s\n", result.ScanTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Documents:        %d\n", result.DocumentCount)
	fmt.Printf("Symbols Found:    %d\n", len(result.Stats))
	fmt.Printf("Ranked:           %d\n", len(result.Ranked))
	fmt.Println()
	fmt.Println("Ranking methodology:")
	fmt.Println("  • 40% social momentum (mentions × sentiment × source diversity)")
	fmt.Println("  • 30% price momentum (30-day price change)")
	fmt.Println("  • 20% volume momentum (recent volume vs. average)")
	fmt.Println("  • -10% volatility penalty (risk adjustment)")
	fmt.Println()

	if len(result.Ranked) == 0 {
		fmt.Println("⚠️  No symbols survived verification and scoring")
		return
	}

	printDetailedAnalysis(result.Ranked[0])

	for i, res := range result.Ranked {
		fmt.Printf("%d. $%s — Combined Score: %.1f\n", i+1, res.Symbol, res.CombinedScore)
		fmt.Printf("   Price: $%.2f (%+.2f%% 30d)\n", res.Snapshot.CurrentPrice, res.Snapshot.PriceChange30D)
		fmt.Printf("   Social: %d mentions across %d sources, %s (%.0f%% bull / %.0f%% bear)\n",
			res.Stat.MentionCount, len(res.Stat.Sources),
			sentimentTag(res.Stat), res.Stat.BullishPct, res.Stat.BearishPct)
		fmt.Printf("   Momentum Score: %.1f\n", res.Stat.MomentumScore)
		if res.Snapshot.VolumeRatioPct != nil {
			fmt.Printf("   Volume Change: %+.2f%%\n", *res.Snapshot.VolumeRatioPct)
		}
		if res.Snapshot.VolatilityPct != nil {
			fmt.Printf("   Volatility: %.2f%%\n", *res.Snapshot.VolatilityPct)
		}
		fmt.Println()
	}
	fmt.Println(line)
}

func printDetailedAnalysis(res types.CombinedResult) {
	snap := res.Snapshot

	fmt.Println(line)
	fmt.Printf("🏆 TOP PICK: $%s — DETAILED ANALYSIS\n", res.Symbol)
	fmt.Println(line)
	fmt.Printf("💰 Current Price: $%.2f\n", snap.CurrentPrice)
	if snap.MarketCap != nil {
		fmt.Printf("📊 Market Cap: $%.2fB\n", *snap.MarketCap/1e9)
	}
	if snap.PERatio != nil {
		fmt.Printf("💎 P/E Ratio: %.2f\n", *snap.PERatio)
	}
	if snap.Sector != "" {
		fmt.Printf("🏢 Sector: %s | Industry: %s\n", snap.Sector, snap.Industry)
	}
	fmt.Println()

	fmt.Println("📱 SOCIAL METRICS")
	fmt.Printf("   Mentions: %d across %d sources (%s)\n",
		res.Stat.MentionCount, len(res.Stat.Sources), strings.Join(res.Stat.Sources, ", "))
	fmt.Printf("   Sentiment: %s (%.0f%% bull / %.0f%% bear)\n",
		sentimentTag(res.Stat), res.Stat.BullishPct, res.Stat.BearishPct)
	fmt.Printf("   Momentum Score: %.1f\n", res.Stat.MomentumScore)
	if res.Stat.BestDoc != nil {
		fmt.Printf("   Top Post: %q (%d points, %s)\n",
			truncate(res.Stat.BestDoc.Title, 60), res.Stat.BestDoc.Engagement, res.Stat.BestDoc.Source)
	}
	fmt.Println()

	fmt.Println("📈 PRICE MOMENTUM")
	fmt.Printf("   30-Day Change: %+.2f%%\n", snap.PriceChange30D)
	if snap.SMA20 != nil {
		fmt.Printf("   20-Day SMA: $%.2f", *snap.SMA20)
		if snap.DistanceFromSMA20 != nil {
			fmt.Printf(" (%+.2f%% away)", *snap.DistanceFromSMA20)
		}
		fmt.Println()
	}
	if snap.SMA50 != nil {
		trend := "Bearish"
		if snap.CurrentPrice > *snap.SMA50 {
			trend = "Bullish"
		}
		fmt.Printf("   50-Day SMA: $%.2f (trend: %s)\n", *snap.SMA50, trend)
	}
	fmt.Println()

	fmt.Println("🎯 MEAN REVERSION")
	if snap.RSI != nil {
		fmt.Printf("   RSI (14): %.1f", *snap.RSI)
		switch {
		case snap.Oversold:
			fmt.Println(" ⚠️  OVERSOLD (<30)")
		case snap.Overbought:
			fmt.Println(" ⚠️  OVERBOUGHT (>70)")
		default:
			fmt.Println(" (neutral)")
		}
	}
	if snap.BBPosition != nil {
		fmt.Printf("   Bollinger Position: %.0f%%", *snap.BBPosition)
		switch {
		case snap.AtLowerBand:
			fmt.Println(" ⚠️  at lower band")
		case snap.AtUpperBand:
			fmt.Println(" ⚠️  at upper band")
		default:
			fmt.Println()
		}
		fmt.Printf("   Bands: $%.2f – $%.2f\n", *snap.BBLower, *snap.BBUpper)
	}
	fmt.Println()

	if snap.High52W != nil && snap.Low52W != nil {
		fmt.Println("📅 52-WEEK RANGE")
		fmt.Printf("   $%.2f – $%.2f", *snap.Low52W, *snap.High52W)
		if snap.RangePosition52 != nil {
			fmt.Printf(" (currently at %.0f%%)", *snap.RangePosition52)
		}
		fmt.Println()
		fmt.Println()
	}

	fmt.Println(line)
	fmt.Println()
}

func printSummary(result *pipeline.Result) {
	if len(result.Ranked) == 0 {
		return
	}

	fmt.Println(line)
	fmt.Println("                        EXECUTIVE SUMMARY")
	fmt.Println(line)

	best := result.Ranked[0]
	fmt.Printf("🏆 BEST COMBINED MOMENTUM: $%s (score %.1f)\n", best.Symbol, best.CombinedScore)

	mostMentioned := result.Ranked[0]
	bestPrice := result.Ranked[0]
	mostBullish := result.Ranked[0]
	for _, res := range result.Ranked[1:] {
		if res.Stat.MentionCount > mostMentioned.Stat.MentionCount {
			mostMentioned = res
		}
		if res.Snapshot.PriceChange30D > bestPrice.Snapshot.PriceChange30D {
			bestPrice = res
		}
		if res.Stat.BullishPct > mostBullish.Stat.BullishPct {
			mostBullish = res
		}
	}
	fmt.Printf("🔥 MOST MENTIONED: $%s (%d mentions, %d sources)\n",
		mostMentioned.Symbol, mostMentioned.Stat.MentionCount, len(mostMentioned.Stat.Sources))
	fmt.Printf("📈 BEST PRICE PERFORMANCE: $%s (%+.2f%% in 30 days)\n",
		bestPrice.Symbol, bestPrice.Snapshot.PriceChange30D)
	fmt.Printf("🚀 HIGHEST BULLISH SENTIMENT: $%s (%.0f%% bullish)\n",
		mostBullish.Symbol, mostBullish.Stat.BullishPct)
	fmt.Println(line)
	fmt.Println()
}

func sentimentTag(st types.AggregateStat) string {
	switch {
	case st.BullishPct >= 60:
		return "🚀 BULLISH"
	case st.BearishPct >= 60:
		return "🐻 BEARISH"
	default:
		return "⚖️ NEUTRAL"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
