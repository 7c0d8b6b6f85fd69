package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"property-engine/core/dataset"
	"property-engine/core/logger"
	"property-engine/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Country is one entry of the country index.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// ShardCache memoizes the country index and per-country shards for the process lifetime.
// A failed load is logged and served as an empty collection; it is not memoized,
// so the next access retries. Returned slices are shared and must not be modified.
type ShardCache struct {
	source dataset.Source
	logger *zap.Logger

	mu        sync.RWMutex
	countries []Country
	indexed   bool
	shards    map[string][]utils.Raw
	sf        singleflight.Group
}

// NewShardCache creates an empty ShardCache over source. A nil log discards output.
func NewShardCache(source dataset.Source, log *zap.Logger) *ShardCache {
	return &ShardCache{
		source: source,
		logger: logger.OrNop(log),
		shards: make(map[string][]utils.Raw),
	}
}

// Countries returns the country index in stored order.
func (c *ShardCache) Countries(ctx context.Context) []Country {
	countries, _ := c.loadCountries(ctx)
	return countries
}

// Properties returns the raw records of the country's shard in stored order.
func (c *ShardCache) Properties(ctx context.Context, code string) []utils.Raw {
	records, _ := c.loadProperties(ctx, code)
	return records
}

// loadCountries also reports whether the index is authoritative. It is false when
// the read failed for any reason other than the index not existing.
func (c *ShardCache) loadCountries(ctx context.Context) ([]Country, bool) {
	c.mu.RLock()
	countries, ok := c.countries, c.indexed
	c.mu.RUnlock()
	if ok {
		return countries, true
	}

	result, err, _ := c.sf.Do("index", func() (interface{}, error) {
		c.mu.RLock()
		countries, ok := c.countries, c.indexed
		c.mu.RUnlock()
		if ok {
			return countries, nil
		}

		data, err := c.source.ReadIndex(ctx)
		if err != nil {
			c.logger.Warn("Failed to read country index", zap.String("source", c.source.Describe()), zap.Error(err))
			return []Country{}, transient(err)
		}
		countries, err = ParseCountries(data)
		if err != nil {
			c.logger.Warn("Failed to load country index", zap.String("source", c.source.Describe()), zap.Error(err))
			return []Country{}, nil
		}

		c.mu.Lock()
		c.countries, c.indexed = countries, true
		c.mu.Unlock()
		return countries, nil
	})
	return result.([]Country), err == nil
}

// loadProperties also reports whether the shard is authoritative, as loadCountries does.
func (c *ShardCache) loadProperties(ctx context.Context, code string) ([]utils.Raw, bool) {
	code = dataset.NormalizeCode(code)
	if code == "" {
		return nil, true
	}

	c.mu.RLock()
	records, ok := c.shards[code]
	c.mu.RUnlock()
	if ok {
		return records, true
	}

	result, err, _ := c.sf.Do("shard:"+code, func() (interface{}, error) {
		c.mu.RLock()
		records, ok := c.shards[code]
		c.mu.RUnlock()
		if ok {
			return records, nil
		}

		data, err := c.source.ReadShard(ctx, code)
		if err != nil {
			c.logger.Warn("Failed to read country shard", zap.String("country", code), zap.Error(err))
			return []utils.Raw{}, transient(err)
		}
		records, err = ParseShard(data)
		if err != nil {
			c.logger.Warn("Failed to load country shard", zap.String("country", code), zap.Error(err))
			return []utils.Raw{}, nil
		}

		c.mu.Lock()
		c.shards[code] = records
		c.mu.Unlock()
		c.logger.Debug("Loaded country shard", zap.String("country", code), zap.Int("records", len(records)))
		return records, nil
	})
	return result.([]utils.Raw), err == nil
}

// transient returns err unless it reports a missing object. A missing or
// corrupt file is a property of the dataset; any other read error may pass.
func transient(err error) error {
	if errors.Is(err, dataset.ErrNotExist) {
		return nil
	}
	return err
}

// ParseCountries decodes a country index: a bare array or {"countries": [...]}.
// Entries with a blank code are skipped and codes are upper-cased.
func ParseCountries(data []byte) ([]Country, error) {
	var entries []Country
	if err := json.Unmarshal(data, &entries); err != nil {
		var wrapped struct {
			Countries []Country `json:"countries"`
		}
		if werr := json.Unmarshal(data, &wrapped); werr != nil {
			return nil, fmt.Errorf("failed to decode country index: %w", err)
		}
		entries = wrapped.Countries
	}

	countries := make([]Country, 0, len(entries))
	for _, e := range entries {
		e.Code = dataset.NormalizeCode(e.Code)
		if e.Code == "" {
			continue
		}
		e.Name = strings.TrimSpace(e.Name)
		countries = append(countries, e)
	}
	return countries, nil
}

// ParseShard decodes a shard: a bare array of records or {"properties": [...]}.
// Elements that are not JSON objects are skipped.
func ParseShard(data []byte) ([]utils.Raw, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapped struct {
			Properties []any `json:"properties"`
		}
		if werr := json.Unmarshal(data, &wrapped); werr != nil {
			return nil, fmt.Errorf("failed to decode shard: %w", err)
		}
		items = wrapped.Properties
	}

	records := make([]utils.Raw, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return records, nil
}
