// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a read-only Client interface so the listing
// dataset (country index, per-country shards, store directory) can be served from
// AWS S3 or a self-hosted MinIO instance. The Client interface also makes storage
// interactions easy to mock (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the dataset bucket.
//   - GetObject: Retrieves a dataset file as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "listings")
package storage
