package collect

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"social-momentum-scanner/internal/types"
)

// FileCollector reads a pre-fetched document batch from a JSONL file, one
// Document per line. Used for offline and deterministic runs.
type FileCollector struct {
	path string
}

func NewFileCollector(path string) *FileCollector {
	return &FileCollector{path: path}
}

func (f *FileCollector) Name() string { return "file:" + f.path }

func (f *FileCollector) ValidateCredentials(ctx context.Context) error {
	if _, err := os.Stat(f.path); err != nil {
		return fmt.Errorf("document file not readable: %w", err)
	}
	return nil
}

func (f *FileCollector) Collect(ctx context.Context, limit int) ([]types.Document, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var docs []types.Document
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if limit > 0 && len(docs) >= limit {
			break
		}
		var d types.Document
		if err := json.Unmarshal(sc.Bytes(), &d); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", f.path, line, err)
		}
		docs = append(docs, d)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
