package property

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("property not found")

	// ErrEmptyLookup is returned when neither slug nor id is given.
	ErrEmptyLookup = errors.New("slug or id is required")
)

// Service exposes property resolution to transports.
type Service struct {
	resolver *Resolver
	logger   *zap.Logger
}

// NewService creates a new property service.
func NewService(resolver *Resolver, logger *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		logger:   logger,
	}
}

// Get resolves a property by slug and/or id.
func (s *Service) Get(ctx context.Context, slug, id string) (*Property, error) {
	if strings.TrimSpace(slug) == "" && strings.TrimSpace(id) == "" {
		return nil, ErrEmptyLookup
	}
	p, ok := s.resolver.Resolve(ctx, Lookup{Slug: slug, ID: id})
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Scans reports how many full dataset scans the resolver has run.
func (s *Service) Scans() int64 {
	return s.resolver.Scans()
}
