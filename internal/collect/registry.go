// Package collect supplies document batches from named sources. Collectors
// are registered explicitly at startup from a static list; there is no
// runtime discovery.
package collect

import (
	"context"
	"fmt"
	"sort"

	"social-momentum-scanner/internal/interfaces"
	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/types"
)

// Registry maps collector names to implementations.
type Registry struct {
	collectors map[string]interfaces.DocumentCollector
}

func NewRegistry() *Registry {
	return &Registry{collectors: make(map[string]interfaces.DocumentCollector)}
}

// Register adds a collector. Registering a duplicate name is an error so a
// misconfigured static list fails at startup, not mid-scan.
func (r *Registry) Register(c interfaces.DocumentCollector) error {
	name := c.Name()
	if _, exists := r.collectors[name]; exists {
		return fmt.Errorf("collector %q already registered", name)
	}
	r.collectors[name] = c
	return nil
}

// Get returns a collector by name.
func (r *Registry) Get(name string) (interfaces.DocumentCollector, bool) {
	c, ok := r.collectors[name]
	return c, ok
}

// Names returns registered collector names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.collectors))
	for name := range r.collectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectAll runs every registered collector in name order and returns the
// combined batch. A failing collector is logged and skipped; one bad source
// never aborts the scan.
func (r *Registry) CollectAll(ctx context.Context, limit int) []types.Document {
	var docs []types.Document
	for _, name := range r.Names() {
		c := r.collectors[name]
		if err := c.ValidateCredentials(ctx); err != nil {
			logger.ErrorWithErr(ctx, "Collector credentials invalid, skipping", err, "collector", name)
			continue
		}
		batch, err := c.Collect(ctx, limit)
		if err != nil {
			logger.ErrorWithErr(ctx, "Collector failed, skipping", err, "collector", name)
			continue
		}
		logger.Info(ctx, "Collected documents", "collector", name, "documents", len(batch))
		docs = append(docs, batch...)
	}
	return docs
}
