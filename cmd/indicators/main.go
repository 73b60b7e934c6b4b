package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"social-momentum-scanner/internal/indicators"
	"social-momentum-scanner/internal/interfaces"
	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/quote"
	"social-momentum-scanner/internal/quote/quoteobs"
	"social-momentum-scanner/internal/ratelimit"
	"social-momentum-scanner/internal/store"
	"social-momentum-scanner/internal/types"
)

func main() {
	demo := flag.Bool("demo", false, "compute indicators from a generated offline price series")
	bars := flag.Int("bars", 90, "number of bars in the demo series")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: indicators [--demo] [--bars N] SYMBOL [SYMBOL...]")
		os.Exit(1)
	}

	_ = godotenv.Load()
	logger.Init()

	cfg := indicators.Config{}
	var provider interfaces.QuoteProvider
	timeout := 10 * time.Second

	if *demo {
		mock := quote.NewMockProvider()
		for _, arg := range flag.Args() {
			sym := strings.ToUpper(arg)
			mock.Histories[sym] = quote.DemoQuote(sym, *bars, 100)
		}
		provider = mock
	} else {
		appCfg, err := store.LoadConfig("config.yaml")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = indicators.Config{
			SMAShort:   appCfg.Indicators.SMAShort,
			SMALong:    appCfg.Indicators.SMALong,
			RSIPeriod:  appCfg.Indicators.RSIPeriod,
			BBWindow:   appCfg.Indicators.BBWindow,
			BBStdDev:   appCfg.Indicators.BBStdDev,
			RecentBars: appCfg.Indicators.RecentBars,
		}
		timeout = time.Duration(appCfg.Quotes.TimeoutSeconds) * time.Second
		provider = quoteobs.Wrap(quote.NewClient(quote.Params{
			BaseURL: appCfg.Quotes.BaseURL,
			Range:   appCfg.Quotes.Range,
			Timeout: timeout,
		}))
	}

	limiter := ratelimit.New(2, 500*time.Millisecond)
	engine := indicators.NewEngine(provider, limiter, timeout, cfg)

	ctx := context.Background()
	for _, arg := range flag.Args() {
		sym := strings.ToUpper(arg)
		snap, err := engine.Snapshot(ctx, sym)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", sym, err)
			continue
		}
		printSnapshot(snap)
	}
}

func printSnapshot(snap *types.TechnicalSnapshot) {
	fmt.Println("══════════════════════════════════════════════════")
	fmt.Printf("📊 $%s TECHNICAL SNAPSHOT\n", snap.Symbol)
	fmt.Println("══════════════════════════════════════════════════")
	fmt.Printf("Price:            $%.2f\n", snap.CurrentPrice)
	fmt.Printf("30-Day Change:    %+.2f%%\n", snap.PriceChange30D)
	printOpt("SMA 20:           $%.2f\n", snap.SMA20)
	printOpt("SMA 50:           $%.2f\n", snap.SMA50)
	printOpt("Dist from SMA20:  %+.2f%%\n", snap.DistanceFromSMA20)
	if snap.RSI != nil {
		fmt.Printf("RSI:              %.1f", *snap.RSI)
		switch {
		case snap.Oversold:
			fmt.Print("  (oversold)")
		case snap.Overbought:
			fmt.Print("  (overbought)")
		}
		fmt.Println()
	}
	if snap.BBUpper != nil && snap.BBLower != nil {
		fmt.Printf("Bollinger Bands:  $%.2f – $%.2f\n", *snap.BBLower, *snap.BBUpper)
	}
	printOpt("Band Position:    %.0f%%\n", snap.BBPosition)
	printOpt("Volume Change:    %+.2f%%\n", snap.VolumeRatioPct)
	printOpt("Avg Volume:       %.0f\n", snap.AvgVolume)
	printOpt("Volatility:       %.2f%%\n", snap.VolatilityPct)
	if snap.High52W != nil && snap.Low52W != nil {
		fmt.Printf("52-Week Range:    $%.2f – $%.2f\n", *snap.Low52W, *snap.High52W)
	}
	printOpt("Range Position:   %.0f%%\n", snap.RangePosition52)
	fmt.Println()
}

func printOpt(format string, v *float64) {
	if v != nil {
		fmt.Printf(format, *v)
	}
}
