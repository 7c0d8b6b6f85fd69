package property

import (
	"property-engine/core/dataset"
	"property-engine/feature/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the shard cache, normalizer and resolver over source.
// stores may be nil to disable the store cross-reference.
func NewFeature(source dataset.Source, stores store.Finder, logger *zap.Logger) *Feature {
	svc := NewService(NewEngine(source, stores, logger), logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// NewEngine builds a Resolver with its own shard cache and normalizer.
func NewEngine(source dataset.Source, stores store.Finder, logger *zap.Logger) *Resolver {
	return NewResolver(NewShardCache(source, logger), NewNormalizer(stores, logger), logger)
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "property"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
