package checks

import (
	"context"
	"fmt"

	"property-engine/core/dataset"
	"property-engine/core/storage"

	"github.com/minio/minio-go/v7"
)

// RequiredObjects lists the objects a bucket-backed dataset needs: the country
// index, the store directory when it is file-backed, and one shard per country.
func RequiredObjects(cfg dataset.Config, codes []string) []string {
	objects := []string{cfg.IndexPath()}
	if cfg.StoreDirectory == "" || cfg.StoreDirectory == "file" {
		objects = append(objects, cfg.StoresPath())
	}
	for _, code := range codes {
		objects = append(objects, cfg.ShardPath(code))
	}
	return objects
}

// CheckStructure returns the entries of objects that are missing from bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, objects []string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, name := range objects {
		found, err := objectExists(ctx, client, bucket, name)
		if err != nil {
			return nil, err
		}
		if !found {
			missing = append(missing, name)
		}
	}

	return missing, nil
}

func objectExists(ctx context.Context, client storage.Client, bucket, name string) (bool, error) {
	// stopping early requires cancelling the listing goroutine
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    name,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", name, obj.Err)
		}
		if obj.Key == name {
			return true, nil
		}
	}
	return false, nil
}
