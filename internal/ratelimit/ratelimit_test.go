package ratelimit

import (
	"context"
	"testing"
	"time"
)

// fakeClock advances only when the limiter sleeps, so tests never block.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time        { return f.t }
func (f *fakeClock) sleep(d time.Duration) { f.t = f.t.Add(d) }

func TestBurstThenRefill(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newWithClock(2, time.Second, clock.now, clock.sleep)

	// The burst drains without advancing the clock.
	if !l.tryAcquire() || !l.tryAcquire() {
		t.Fatal("Expected burst tokens to be available")
	}
	if l.tryAcquire() {
		t.Fatal("Expected empty bucket after burst")
	}

	// One refill interval restores exactly one token.
	clock.t = clock.t.Add(time.Second)
	if !l.tryAcquire() {
		t.Fatal("Expected one token after refill interval")
	}
	if l.tryAcquire() {
		t.Fatal("Expected only one token per interval")
	}
}

func TestRefillCapsAtMax(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newWithClock(2, time.Second, clock.now, clock.sleep)

	l.tryAcquire()
	l.tryAcquire()

	// A long idle period refills to the cap, not beyond it.
	clock.t = clock.t.Add(time.Hour)
	if !l.tryAcquire() || !l.tryAcquire() {
		t.Fatal("Expected bucket refilled to max")
	}
	if l.tryAcquire() {
		t.Fatal("Expected bucket capped at max tokens")
	}
}

func TestWaitBlocksUntilRefill(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newWithClock(1, 50*time.Millisecond, clock.now, clock.sleep)

	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Expected immediate acquire, got %v", err)
	}

	before := clock.t
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Expected acquire after refill, got %v", err)
	}
	if waited := clock.t.Sub(before); waited < 50*time.Millisecond {
		t.Errorf("Expected to wait at least one refill interval, waited %v", waited)
	}
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newWithClock(1, time.Hour, clock.now, clock.sleep)
	l.tryAcquire()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); err == nil {
		t.Fatal("Expected context error from cancelled Wait")
	}
}
