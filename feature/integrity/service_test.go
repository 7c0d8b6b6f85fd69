package integrity

import (
	"context"
	"io"
	"strings"
	"testing"

	"property-engine/core/dataset"
	"property-engine/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

var bucketConfig = dataset.Config{
	Driver:         dataset.DriverBucket,
	Root:           "data",
	IndexFile:      "countries.json",
	ShardDir:       "properties",
	StoresFile:     "stores.json",
	StoreDirectory: "database",
}

// body returns a fresh reader per call so an object can be read more than once.
func body(s string) func() io.ReadCloser {
	return func() io.ReadCloser {
		return io.NopCloser(strings.NewReader(s))
	}
}

// setupBucket returns a mock bucket holding the index and a TR shard.
func setupBucket() *mocks.Client {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "listings").Return(true, nil)
	mockClient.On("GetObject", mock.Anything, "listings", "data/countries.json", mock.Anything).
		Return(body(`[{"code": "TR"}, {"code": "CY"}]`), nil)
	mockClient.On("GetObject", mock.Anything, "listings", "data/properties/TR.json", mock.Anything).
		Return(body(`[{"id": "1", "slug": "villa-x"}]`), nil)
	mockClient.On("GetObject", mock.Anything, "listings", "data/properties/CY.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("ListObjects", mock.Anything, "listings", mock.Anything).Return(
		func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			if opts.Prefix != "data/properties/CY.json" {
				ch <- minio.ObjectInfo{Key: opts.Prefix}
			}
			close(ch)
			return ch
		})
	return mockClient
}

func newBucketService(t *testing.T, db *gorm.DB) *Service {
	t.Helper()
	mockClient := setupBucket()
	source, err := dataset.NewSource(bucketConfig, mockClient, "listings")
	require.NoError(t, err)
	return NewService(bucketConfig, source, mockClient, "listings", db, zap.NewNop())
}

func TestService_CheckStructure(t *testing.T) {
	svc := newBucketService(t, nil)

	missing, err := svc.CheckStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"data/properties/CY.json"}, missing)
}

func TestService_CheckStructure_FileDriver(t *testing.T) {
	cfg := bucketConfig
	cfg.Driver = dataset.DriverFile
	svc := NewService(cfg, dataset.NewFileSource(cfg), nil, "", nil, zap.NewNop())

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestService_CheckDataset(t *testing.T) {
	svc := newBucketService(t, nil)

	report, err := svc.CheckDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Records)
	require.Len(t, report.Countries, 2)
	assert.Equal(t, "ok", report.Countries[0].Status)
	assert.Equal(t, "error", report.Countries[1].Status)
	assert.False(t, report.Matched)
}

func TestService_CheckStores(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := newBucketService(t, db)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "varchar(64)", "NO", "PRI", nil, "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `stores`").WillReturnRows(rows)

	report, err := svc.CheckStores()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Contains(t, report.Tables["stores"].MissingColumns, "email")

	fileBacked := NewService(dataset.Config{StoreDirectory: "file"}, nil, nil, "", db, zap.NewNop())
	_, err = fileBacked.CheckStores()
	assert.ErrorIs(t, err, ErrNotApplicable)
}
