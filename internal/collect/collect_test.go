package collect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"social-momentum-scanner/internal/types"
)

type fakeCollector struct {
	name string
	docs []types.Document
	err  error
}

func (f *fakeCollector) Name() string                                  { return f.name }
func (f *fakeCollector) ValidateCredentials(ctx context.Context) error { return nil }
func (f *fakeCollector) Collect(ctx context.Context, limit int) ([]types.Document, error) {
	return f.docs, f.err
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&fakeCollector{name: "a"}); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}
	if err := r.Register(&fakeCollector{name: "a"}); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(&fakeCollector{name: name}); err != nil {
			t.Fatal(err)
		}
	}
	names := r.Names()
	if names[0] != "alpha" || names[1] != "mid" || names[2] != "zeta" {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestFileCollector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	content := `{"source":"file","title":"GME to the moon","engagement":120}
{"source":"file","title":"AMC calls","engagement":45,"comment_count":12}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc := NewFileCollector(path)
	if err := fc.ValidateCredentials(context.Background()); err != nil {
		t.Fatalf("Expected readable file to validate, got %v", err)
	}

	docs, err := fc.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	if docs[0].Title != "GME to the moon" || docs[0].Engagement != 120 {
		t.Errorf("Unexpected first document: %+v", docs[0])
	}
	if docs[1].CommentCount != 12 {
		t.Errorf("Expected comment count 12, got %d", docs[1].CommentCount)
	}
}

func TestFileCollectorLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	content := `{"source":"file","title":"one"}
{"source":"file","title":"two"}
{"source":"file","title":"three"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	docs, err := NewFileCollector(path).Collect(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("Expected limit of 2 documents, got %d", len(docs))
	}
}

func TestFileCollectorBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	if err := os.WriteFile(path, []byte("not json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileCollector(path).Collect(context.Background(), 0); err == nil {
		t.Error("Expected parse error for malformed line")
	}
}

func TestFileCollectorMissingFile(t *testing.T) {
	fc := NewFileCollector(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err := fc.ValidateCredentials(context.Background()); err == nil {
		t.Error("Expected validation failure for missing file")
	}
}

func TestRedditValidateCredentials(t *testing.T) {
	cases := []struct {
		name    string
		params  RedditParams
		wantErr bool
	}{
		{"valid", RedditParams{BaseURL: "https://old.reddit.com", Community: "stocks", UserAgent: "test/1.0"}, false},
		{"missing user agent", RedditParams{BaseURL: "https://old.reddit.com", Community: "stocks"}, true},
		{"missing community", RedditParams{BaseURL: "https://old.reddit.com", UserAgent: "test/1.0"}, true},
		{"missing base url", RedditParams{Community: "stocks", UserAgent: "test/1.0"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewRedditCollector(tc.params).ValidateCredentials(context.Background())
			if (err != nil) != tc.wantErr {
				t.Errorf("Expected wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRedditName(t *testing.T) {
	c := NewRedditCollector(RedditParams{Community: "wallstreetbets"})
	if c.Name() != "reddit:wallstreetbets" {
		t.Errorf("Expected reddit:wallstreetbets, got %s", c.Name())
	}
}

func TestParseCount(t *testing.T) {
	cases := map[string]int{
		"":       0,
		"•":      0,
		"42":     42,
		"1.2k":   1200,
		"3K":     3000,
		"2m":     2_000_000,
		"1,234":  1234,
		"potato": 0,
	}
	for in, want := range cases {
		if got := parseCount(in); got != want {
			t.Errorf("parseCount(%q): expected %d, got %d", in, want, got)
		}
	}
}

func TestGetDomain(t *testing.T) {
	if got := getDomain("https://old.reddit.com"); got != "old.reddit.com" {
		t.Errorf("Expected old.reddit.com, got %s", got)
	}
}
