package property

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"property-engine/core/logger"
	"property-engine/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Lookup identifies a listing by slug, id or both. Either one matching is enough.
type Lookup struct {
	Slug string
	ID   string
}

// memoEntry is a memoized outcome; found is false for a "definitely absent" marker.
type memoEntry struct {
	property Property
	found    bool
}

// Resolver finds canonical properties across all country shards.
// Outcomes, including misses, are memoized for the process lifetime, so each
// distinct (slug, id) pair costs at most one full scan.
type Resolver struct {
	shards     *ShardCache
	normalizer *Normalizer
	logger     *zap.Logger

	mu    sync.RWMutex
	memo  map[string]memoEntry
	sf    singleflight.Group
	scans atomic.Int64
}

// NewResolver creates a Resolver with an empty memo. A nil log discards output.
func NewResolver(shards *ShardCache, normalizer *Normalizer, log *zap.Logger) *Resolver {
	return &Resolver{
		shards:     shards,
		normalizer: normalizer,
		logger:     logger.OrNop(log),
		memo:       make(map[string]memoEntry),
	}
}

// NormalizeSlug URI-decodes (keeping the raw value when decoding fails) and lower-cases a slug.
func NormalizeSlug(s string) string {
	s = strings.TrimSpace(s)
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	return strings.ToLower(s)
}

func slugKey(slug string) string {
	return "slug:" + slug
}

func idKey(id string) string {
	return "id:" + id
}

// lookupKeys returns the memo keys a query is served by, slug first.
func lookupKeys(slug, id string) []string {
	keys := make([]string, 0, 2)
	if slug != "" {
		keys = append(keys, slugKey(slug))
	}
	if id != "" {
		keys = append(keys, idKey(id))
	}
	return keys
}

// Resolve returns a copy of the canonical property matching q. The boolean is
// false when no record matches; that outcome is memoized like a hit.
func (r *Resolver) Resolve(ctx context.Context, q Lookup) (Property, bool) {
	// callers may pass strings backed by reused request buffers; the memo outlives them
	slug := strings.Clone(NormalizeSlug(q.Slug))
	id := strings.Clone(strings.TrimSpace(q.ID))
	keys := lookupKeys(slug, id)
	if len(keys) == 0 {
		return Property{}, false
	}

	if entry, ok := r.cached(keys); ok {
		return entry.result()
	}

	for attempt := 0; ; attempt++ {
		result, err, _ := r.sf.Do(strings.Join(keys, "|"), func() (interface{}, error) {
			if entry, ok := r.cached(keys); ok {
				return entry, nil
			}
			return r.scan(ctx, slug, id, keys)
		})
		if err == nil {
			return result.(memoEntry).result()
		}
		// the shared scan may belong to another caller whose context ended
		if attempt == 0 && ctx.Err() == nil && isContextErr(err) {
			continue
		}
		r.logger.Debug("Resolution aborted", zap.String("slug", slug), zap.String("id", id), zap.Error(err))
		return Property{}, false
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Scans reports how many full scans have run.
func (r *Resolver) Scans() int64 {
	return r.scans.Load()
}

func (e memoEntry) result() (Property, bool) {
	if !e.found {
		return Property{}, false
	}
	return e.property.Clone(), true
}

// cached serves a query from the memo. A positive entry under any key wins; a
// negative is served only when every key of the query is memoized as absent.
func (r *Resolver) cached(keys []string) (memoEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	absent := 0
	for _, k := range keys {
		entry, ok := r.memo[k]
		if !ok {
			continue
		}
		if entry.found {
			return entry, true
		}
		absent++
	}
	return memoEntry{}, absent == len(keys)
}

// scan walks the country index and each shard in stored order; the first record
// matching by slug or by id wins.
func (r *Resolver) scan(ctx context.Context, slug, id string, keys []string) (memoEntry, error) {
	r.scans.Add(1)

	countries, complete := r.shards.loadCountries(ctx)
	for _, country := range countries {
		if err := ctx.Err(); err != nil {
			return memoEntry{}, err
		}
		records, ok := r.shards.loadProperties(ctx, country.Code)
		complete = complete && ok
		for _, raw := range records {
			ownSlug := NormalizeSlug(utils.GetString(raw, "slug", ""))
			ownID := utils.GetString(raw, "id", "")
			if !(slug != "" && ownSlug == slug) && !(id != "" && ownID == id) {
				continue
			}

			p := r.normalizer.Normalize(ctx, raw, Hints{
				CandidateID:   id,
				Key:           firstNonEmpty(slug, id),
				SlugCandidate: slug,
			})
			entry := memoEntry{property: p, found: true}

			memoKeys := append([]string{}, keys...)
			if ownSlug != "" {
				memoKeys = append(memoKeys, slugKey(ownSlug))
			}
			if ownID != "" {
				memoKeys = append(memoKeys, idKey(ownID))
			}
			r.remember(entry, memoKeys)

			r.logger.Debug("Resolved property",
				zap.String("slug", slug),
				zap.String("id", id),
				zap.String("country", country.Code),
				zap.String("property_id", p.ID),
			)
			return entry, nil
		}
	}

	// a cancelled read looks like an empty shard; do not record it as a miss
	if err := ctx.Err(); err != nil {
		return memoEntry{}, err
	}
	entry := memoEntry{found: false}
	if !complete {
		// a shard could not be read; the record may exist, so the miss is not remembered
		r.logger.Warn("Property not found in a partial scan", zap.String("slug", slug), zap.String("id", id))
		return entry, nil
	}
	r.remember(entry, keys)
	return entry, nil
}

// remember writes entry under every key not yet memoized. Existing keys are never overwritten.
func (r *Resolver) remember(entry memoEntry, keys []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		if _, exists := r.memo[k]; !exists {
			r.memo[k] = entry
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
