package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"property-engine/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotExist is returned when a dataset file is absent.
var ErrNotExist = errors.New("dataset file does not exist")

// Source reads the raw bytes of dataset files.
type Source interface {
	// ReadIndex returns the country index document.
	ReadIndex(ctx context.Context) ([]byte, error)
	// ReadShard returns the shard document of one country.
	ReadShard(ctx context.Context, code string) ([]byte, error)
	// ReadStores returns the store directory document.
	ReadStores(ctx context.Context) ([]byte, error)
	// Describe names the backend for logs.
	Describe() string
}

// NewSource builds the Source selected by cfg.Driver.
// The bucket driver requires a storage client.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Driver {
	case DriverFile, "":
		return NewFileSource(cfg), nil
	case DriverBucket:
		if client == nil {
			return nil, fmt.Errorf("bucket dataset driver requires a storage client")
		}
		return NewBucketSource(cfg, client, bucket), nil
	default:
		return nil, fmt.Errorf("unknown dataset driver: %s", cfg.Driver)
	}
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	cfg Config
}

// NewFileSource creates a filesystem Source rooted at cfg.Root.
func NewFileSource(cfg Config) *FileSource {
	return &FileSource{cfg: cfg}
}

func (s *FileSource) ReadIndex(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.cfg.IndexPath())
}

func (s *FileSource) ReadShard(ctx context.Context, code string) ([]byte, error) {
	return s.read(ctx, s.cfg.ShardPath(code))
}

func (s *FileSource) ReadStores(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.cfg.StoresPath())
}

func (s *FileSource) Describe() string {
	return "file:" + s.cfg.Root
}

func (s *FileSource) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.FromSlash(name)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// BucketSource reads the dataset from object storage.
type BucketSource struct {
	cfg    Config
	client storage.Client
	bucket string
}

// NewBucketSource creates a Source over bucket, using cfg.Root as object prefix.
func NewBucketSource(cfg Config, client storage.Client, bucket string) *BucketSource {
	return &BucketSource{cfg: cfg, client: client, bucket: bucket}
}

func (s *BucketSource) ReadIndex(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.cfg.IndexPath())
}

func (s *BucketSource) ReadShard(ctx context.Context, code string) ([]byte, error) {
	return s.read(ctx, s.cfg.ShardPath(code))
}

func (s *BucketSource) ReadStores(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.cfg.StoresPath())
}

func (s *BucketSource) Describe() string {
	return "bucket:" + s.bucket + "/" + s.cfg.Root
}

func (s *BucketSource) read(ctx context.Context, objectName string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, objectName)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer reader.Close()

	// minio reports a missing key on the first read, not on GetObject.
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, objectName)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	return data, nil
}
