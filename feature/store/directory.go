package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"property-engine/core/dataset"
	"property-engine/core/logger"
	"property-engine/core/utils"

	"go.uber.org/zap"
)

// Finder looks up the store an agent belongs to.
// A nil store with a nil error means no match.
type Finder interface {
	FindByAgent(ctx context.Context, agent Agent) (*Store, error)
}

// Directory is a Finder over the store directory file of the dataset.
// The file is read on first use and kept for the process lifetime; a failed
// read is returned to the caller and retried on the next lookup.
type Directory struct {
	source dataset.Source
	logger *zap.Logger

	mu    sync.RWMutex
	idx   *index
	count int
}

// NewDirectory creates a Directory reading from source.
func NewDirectory(source dataset.Source, log *zap.Logger) *Directory {
	return &Directory{source: source, logger: logger.OrNop(log)}
}

// FindByAgent returns the store matching agent, or nil.
func (d *Directory) FindByAgent(ctx context.Context, agent Agent) (*Store, error) {
	if agent.IsEmpty() {
		return nil, nil
	}
	idx, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	s := idx.match(agent)
	if s == nil {
		return nil, nil
	}
	out := *s
	return &out, nil
}

// Len returns the number of loaded stores, loading them if needed.
func (d *Directory) Len(ctx context.Context) (int, error) {
	if _, err := d.load(ctx); err != nil {
		return 0, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.count, nil
}

func (d *Directory) load(ctx context.Context) (*index, error) {
	d.mu.RLock()
	idx := d.idx
	d.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.idx != nil {
		return d.idx, nil
	}

	data, err := d.source.ReadStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}
	stores, err := ParseStores(data)
	if err != nil {
		return nil, err
	}

	d.idx = newIndex(stores)
	d.count = len(stores)
	d.logger.Info("Store directory loaded",
		zap.String("source", d.source.Describe()),
		zap.Int("stores", len(stores)),
	)
	return d.idx, nil
}

// ParseStores decodes a store directory document.
// It accepts a bare array or an object with a "stores" array; entries without an id are skipped.
func ParseStores(data []byte) ([]Store, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse store directory: %w", err)
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		items, _ = v["stores"].([]any)
	}

	stores := make([]Store, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := storeFromRaw(utils.Raw(raw)); ok {
			stores = append(stores, s)
		}
	}
	return stores, nil
}
