package property

import (
	"context"
	"fmt"
	"sync"

	"property-engine/core/dataset"
)

// memSource is an in-memory dataset.Source that counts reads.
type memSource struct {
	mu       sync.Mutex
	index    []byte
	indexErr error
	shards   map[string][]byte
	reads    map[string]int
	failures map[string]int
}

func newMemSource(index string, shards map[string]string) *memSource {
	s := &memSource{
		index:    []byte(index),
		shards:   make(map[string][]byte),
		reads:    make(map[string]int),
		failures: make(map[string]int),
	}
	for code, body := range shards {
		s.shards[code] = []byte(body)
	}
	return s
}

func (s *memSource) ReadIndex(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads["index"]++
	if err := s.failure("index"); err != nil {
		return nil, err
	}
	if s.indexErr != nil {
		return nil, s.indexErr
	}
	return s.index, nil
}

func (s *memSource) ReadShard(ctx context.Context, code string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[code]++
	if err := s.failure(code); err != nil {
		return nil, err
	}
	data, ok := s.shards[code]
	if !ok {
		return nil, fmt.Errorf("shard %s: %w", code, dataset.ErrNotExist)
	}
	return data, nil
}

func (s *memSource) ReadStores(ctx context.Context) ([]byte, error) {
	return nil, dataset.ErrNotExist
}

func (s *memSource) Describe() string {
	return "memory"
}

// failNext makes the next n reads of key ("index" or a country code) fail.
func (s *memSource) failNext(key string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key] = n
}

func (s *memSource) failure(key string) error {
	if s.failures[key] == 0 {
		return nil
	}
	s.failures[key]--
	return fmt.Errorf("read %s: connection reset by peer", key)
}

func (s *memSource) readCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[key]
}
