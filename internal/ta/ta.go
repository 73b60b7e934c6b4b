// Package ta provides technical indicator math over trailing windows of a
// price series. Functions return NaN when the series is too short for the
// requested window.
package ta

import "math"

func SMA(closes []float64, n int) float64 {
	if len(closes) < n || n <= 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := len(closes) - n; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(n)
}

// RSI computes the rolling-mean average-gain/average-loss oscillator over
// the trailing period. A period with zero losses saturates to 100.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 || period <= 0 {
		return math.NaN()
	}
	gain, loss := 0.0, 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return 100.0
	}
	rs := (gain / float64(period)) / (loss / float64(period))
	return 100.0 - (100.0 / (1.0 + rs))
}

func StdDev(vals []float64, n int) float64 {
	if len(vals) < n || n <= 0 {
		return math.NaN()
	}
	m := SMA(vals, n)
	s := 0.0
	for i := len(vals) - n; i < len(vals); i++ {
		d := vals[i] - m
		s += d * d
	}
	return math.Sqrt(s / float64(n))
}

func Bollinger(closes []float64, n int, k float64) (mid, up, low float64) {
	mid = SMA(closes, n)
	sd := StdDev(closes, n)
	up = mid + k*sd
	low = mid - k*sd
	return
}

// BandPosition maps price onto the band width as a 0-100 percentile.
// A zero-width band (flat series) defaults to 50 rather than dividing
// by zero.
func BandPosition(price, upper, lower float64) float64 {
	if upper == lower {
		return 50
	}
	return (price - lower) / (upper - lower) * 100
}

func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// PctChanges returns day-over-day percent changes of the series. Bars
// following a zero close produce no entry.
func PctChanges(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			continue
		}
		out = append(out, (closes[i]-prev)/prev)
	}
	return out
}

// SampleStdDev is the n-1 standard deviation over the whole slice, used
// for return volatility.
func SampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	m := Mean(vals)
	s := 0.0
	for _, v := range vals {
		d := v - m
		s += d * d
	}
	return math.Sqrt(s / float64(len(vals)-1))
}
