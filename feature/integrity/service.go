package integrity

import (
	"context"
	"errors"
	"fmt"

	"property-engine/core/dataset"
	"property-engine/core/storage"
	"property-engine/feature/integrity/checks"
	"property-engine/feature/property"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotApplicable is returned by checks that do not apply to the configured backends.
var ErrNotApplicable = errors.New("check not applicable")

// Service handles integrity checks.
type Service struct {
	cfg    dataset.Config
	source dataset.Source
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil when
// the dataset is file-backed or the store directory is not database-backed.
func NewService(cfg dataset.Config, source dataset.Source, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		source: source,
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the dataset objects missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.cfg.Driver != dataset.DriverBucket || s.client == nil {
		return nil, fmt.Errorf("%w: dataset driver is %q", ErrNotApplicable, s.cfg.Driver)
	}

	var codes []string
	data, err := s.source.ReadIndex(ctx)
	if err == nil {
		countries, perr := property.ParseCountries(data)
		if perr != nil {
			return nil, perr
		}
		for _, c := range countries {
			codes = append(codes, c.Code)
		}
	} else if !errors.Is(err, dataset.ErrNotExist) {
		return nil, err
	}

	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredObjects(s.cfg, codes))
}

// CheckDataset reports per-country record health and duplicated slugs.
func (s *Service) CheckDataset(ctx context.Context) (*checks.DatasetReport, error) {
	return checks.CheckDataset(ctx, s.source)
}

// CheckStores verifies the stores table when the store directory is database-backed.
func (s *Service) CheckStores() (*checks.SchemaReport, error) {
	if s.cfg.StoreDirectory != "database" {
		return nil, fmt.Errorf("%w: store directory is %q", ErrNotApplicable, s.cfg.StoreDirectory)
	}
	return checks.CheckStoresSchema(s.db)
}
