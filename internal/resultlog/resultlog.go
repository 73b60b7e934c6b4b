// Package resultlog persists finalized scan results as dated JSONL files,
// with a CSV summary export. Saves are idempotent per (symbol, scan time).
package resultlog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"social-momentum-scanner/internal/types"
)

var mu sync.Mutex

// Record is one persisted scan row.
type Record struct {
	ScanTime string               `json:"scan_time"`
	Symbol   string               `json:"symbol"`
	Rank     int                  `json:"rank"`
	Result   types.CombinedResult `json:"result"`
}

// Store writes scan output under a base directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir; empty dir falls back to the
// SCANNER_LOG_DIR env var, then "logs".
func New(dir string) *Store {
	if dir == "" {
		dir = os.Getenv("SCANNER_LOG_DIR")
	}
	if dir == "" {
		dir = "logs"
	}
	return &Store{dir: dir}
}

func (s *Store) scanFilepath(t time.Time) string {
	return filepath.Join(s.dir, "scans", t.UTC().Format("2006-01-02")+".jsonl")
}

func (s *Store) csvFilepath(t time.Time) string {
	return filepath.Join(s.dir, "scans", t.UTC().Format("2006-01-02")+".csv")
}

// Save appends the ranked results to the day's file, skipping any
// (symbol, scan time) pair already present, and returns the count written.
func (s *Store) Save(ctx context.Context, scanTime time.Time, results []types.CombinedResult) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	p := s.scanFilepath(scanTime)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return 0, err
	}

	existing, err := existingKeys(p)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	ts := scanTime.UTC().Format(time.RFC3339)
	saved := 0
	for i, res := range results {
		if ctx.Err() != nil {
			return saved, ctx.Err()
		}
		key := res.Symbol + "|" + ts
		if _, dup := existing[key]; dup {
			continue
		}
		rec := Record{ScanTime: ts, Symbol: res.Symbol, Rank: i + 1, Result: res}
		b, err := json.Marshal(rec)
		if err != nil {
			return saved, err
		}
		if _, err := fmt.Fprintln(f, string(b)); err != nil {
			return saved, err
		}
		existing[key] = struct{}{}
		saved++
	}
	return saved, nil
}

func existingKeys(path string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return keys, nil
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			continue
		}
		keys[rec.Symbol+"|"+rec.ScanTime] = struct{}{}
	}
	return keys, sc.Err()
}

// WriteCSV writes a flat one-row-per-symbol summary of the scan and
// returns the file path.
func (s *Store) WriteCSV(scanTime time.Time, results []types.CombinedResult) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	p := s.csvFilepath(scanTime)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"rank", "symbol", "combined_score", "momentum_score", "mentions",
		"sources", "bullish_pct", "price", "price_change_30d", "rsi",
		"volume_ratio_pct", "volatility_pct",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, res := range results {
		row := []string{
			strconv.Itoa(i + 1),
			res.Symbol,
			fmtF(res.CombinedScore),
			fmtF(res.Stat.MomentumScore),
			strconv.Itoa(res.Stat.MentionCount),
			strconv.Itoa(len(res.Stat.Sources)),
			fmtF(res.Stat.BullishPct),
			fmtF(res.Snapshot.CurrentPrice),
			fmtF(res.Snapshot.PriceChange30D),
			fmtOpt(res.Snapshot.RSI),
			fmtOpt(res.Snapshot.VolumeRatioPct),
			fmtOpt(res.Snapshot.VolatilityPct),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return p, w.Error()
}

func fmtF(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func fmtOpt(v *float64) string {
	if v == nil {
		return ""
	}
	return fmtF(*v)
}

// CompressOlder gzips scan files older than the given number of days.
// Zero or negative disables compression.
func (s *Store) CompressOlder(days int) error {
	if days <= 0 {
		return nil
	}
	dir := filepath.Join(s.dir, "scans")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".jsonl") {
			continue
		}
		day, err := time.Parse("2006-01-02", strings.TrimSuffix(name, ".jsonl"))
		if err != nil || !day.Before(cutoff) {
			continue
		}
		if err := gzipFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		out.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}
