package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"social-momentum-scanner/internal/quote"
	"social-momentum-scanner/internal/types"
)

func TestVerifyKnownSymbol(t *testing.T) {
	mock := quote.NewMockProvider()
	mock.Prices["AAPL"] = 180.5

	v := New(mock, nil, time.Second)
	if !v.Verify(context.Background(), "AAPL") {
		t.Error("Expected AAPL to verify")
	}
}

func TestVerifyErrorMeansInvalid(t *testing.T) {
	mock := quote.NewMockProvider()
	mock.Errs["XXXXX"] = errors.New("not found")

	v := New(mock, nil, time.Second)
	if v.Verify(context.Background(), "XXXXX") {
		t.Error("Expected failing lookup to be invalid, not an error")
	}
}

func TestVerifyZeroPriceInvalid(t *testing.T) {
	mock := quote.NewMockProvider()
	mock.Prices["ZERO"] = 0

	v := New(mock, nil, time.Second)
	if v.Verify(context.Background(), "ZERO") {
		t.Error("Expected zero price to be invalid")
	}
}

func stat(symbol string) types.AggregateStat {
	return types.AggregateStat{Symbol: symbol, MentionCount: 1}
}

func TestTopKSkipsInvalidAndStopsAtK(t *testing.T) {
	mock := quote.NewMockProvider()
	mock.Prices["AAA"] = 1
	mock.Prices["CCC"] = 3
	mock.Prices["DDD"] = 4
	// BBB unknown -> invalid.

	v := New(mock, nil, time.Second)
	stats := []types.AggregateStat{stat("AAA"), stat("BBB"), stat("CCC"), stat("DDD")}

	got := v.TopK(context.Background(), stats, 2)
	if len(got) != 2 {
		t.Fatalf("Expected 2 verified stats, got %d", len(got))
	}
	if got[0].Symbol != "AAA" || got[1].Symbol != "CCC" {
		t.Errorf("Expected [AAA CCC], got [%s %s]", got[0].Symbol, got[1].Symbol)
	}
	// DDD was never checked once k was reached.
	if len(mock.PriceCalls) != 3 {
		t.Errorf("Expected 3 lookups, got %d (%v)", len(mock.PriceCalls), mock.PriceCalls)
	}
}

func TestTopKFewerThanK(t *testing.T) {
	mock := quote.NewMockProvider()
	mock.Prices["AAA"] = 1

	v := New(mock, nil, time.Second)
	got := v.TopK(context.Background(), []types.AggregateStat{stat("AAA"), stat("BBB")}, 5)
	if len(got) != 1 {
		t.Errorf("Expected 1 verified stat, got %d", len(got))
	}
}

func TestTopKZero(t *testing.T) {
	v := New(quote.NewMockProvider(), nil, time.Second)
	if got := v.TopK(context.Background(), []types.AggregateStat{stat("AAA")}, 0); got != nil {
		t.Errorf("Expected nil for k=0, got %v", got)
	}
}

func TestTopKCancelledContext(t *testing.T) {
	mock := quote.NewMockProvider()
	mock.Prices["AAA"] = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := New(mock, nil, time.Second)
	got := v.TopK(ctx, []types.AggregateStat{stat("AAA")}, 1)
	if len(got) != 0 {
		t.Errorf("Expected no results after cancellation, got %d", len(got))
	}
	if len(mock.PriceCalls) != 0 {
		t.Errorf("Expected no lookups after cancellation, got %d", len(mock.PriceCalls))
	}
}
