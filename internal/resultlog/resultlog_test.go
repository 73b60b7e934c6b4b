package resultlog

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"social-momentum-scanner/internal/types"
)

func result(symbol string, score float64) types.CombinedResult {
	return types.CombinedResult{
		Symbol:        symbol,
		Stat:          types.AggregateStat{Symbol: symbol, MentionCount: 3},
		Snapshot:      types.TechnicalSnapshot{Symbol: symbol, CurrentPrice: 10},
		CombinedScore: score,
	}
}

func readRecords(t *testing.T, path string) []Record {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	var recs []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("Failed to parse record: %v", err)
		}
		recs = append(recs, rec)
	}
	return recs
}

func TestSaveAndRanks(t *testing.T) {
	store := New(t.TempDir())
	scanTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	results := []types.CombinedResult{result("GME", 40), result("AMC", 20)}
	saved, err := store.Save(context.Background(), scanTime, results)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved != 2 {
		t.Errorf("Expected 2 saved, got %d", saved)
	}

	recs := readRecords(t, store.scanFilepath(scanTime))
	if len(recs) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(recs))
	}
	if recs[0].Symbol != "GME" || recs[0].Rank != 1 {
		t.Errorf("Expected GME at rank 1, got %s rank %d", recs[0].Symbol, recs[0].Rank)
	}
	if recs[1].Rank != 2 {
		t.Errorf("Expected rank 2, got %d", recs[1].Rank)
	}
}

func TestSaveIdempotent(t *testing.T) {
	store := New(t.TempDir())
	scanTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	results := []types.CombinedResult{result("GME", 40)}

	if saved, _ := store.Save(context.Background(), scanTime, results); saved != 1 {
		t.Fatalf("Expected first save to write 1, got %d", saved)
	}
	saved, err := store.Save(context.Background(), scanTime, results)
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	if saved != 0 {
		t.Errorf("Expected duplicate save to write 0, got %d", saved)
	}

	recs := readRecords(t, store.scanFilepath(scanTime))
	if len(recs) != 1 {
		t.Errorf("Expected 1 record after duplicate save, got %d", len(recs))
	}
}

func TestSaveDifferentScanTimesAppend(t *testing.T) {
	store := New(t.TempDir())
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	results := []types.CombinedResult{result("GME", 40)}

	store.Save(context.Background(), day.Add(9*time.Hour), results)
	store.Save(context.Background(), day.Add(15*time.Hour), results)

	recs := readRecords(t, store.scanFilepath(day))
	if len(recs) != 2 {
		t.Errorf("Expected 2 records for two scans of the same day, got %d", len(recs))
	}
}

func TestWriteCSV(t *testing.T) {
	store := New(t.TempDir())
	scanTime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	p, err := store.WriteCSV(scanTime, []types.CombinedResult{result("GME", 40)})
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	f, err := os.Open(p)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "rank" {
		t.Errorf("Expected header to start with rank, got %s", rows[0][0])
	}
	if rows[1][1] != "GME" {
		t.Errorf("Expected GME row, got %s", rows[1][1])
	}
	// Optional indicators absent from the snapshot stay empty.
	if rows[1][9] != "" {
		t.Errorf("Expected empty rsi cell, got %q", rows[1][9])
	}
}

func TestCompressOlder(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	old := time.Now().UTC().AddDate(0, 0, -30)
	recent := time.Now().UTC()
	store.Save(context.Background(), old, []types.CombinedResult{result("GME", 40)})
	store.Save(context.Background(), recent, []types.CombinedResult{result("AMC", 20)})

	if err := store.CompressOlder(7); err != nil {
		t.Fatalf("CompressOlder failed: %v", err)
	}

	if _, err := os.Stat(store.scanFilepath(old)); !os.IsNotExist(err) {
		t.Error("Expected old file to be removed after compression")
	}
	if _, err := os.Stat(store.scanFilepath(old) + ".gz"); err != nil {
		t.Errorf("Expected gzipped old file, got %v", err)
	}
	if _, err := os.Stat(store.scanFilepath(recent)); err != nil {
		t.Errorf("Expected recent file untouched, got %v", err)
	}
}

func TestCompressOlderDisabled(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing"))
	if err := store.CompressOlder(0); err != nil {
		t.Errorf("Expected disabled compression to be a no-op, got %v", err)
	}
}

func TestNewFallsBackToEnv(t *testing.T) {
	t.Setenv("SCANNER_LOG_DIR", "/tmp/custom-scan-logs")
	store := New("")
	if store.dir != "/tmp/custom-scan-logs" {
		t.Errorf("Expected env fallback, got %s", store.dir)
	}
}
