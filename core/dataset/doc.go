// Package dataset locates and reads the static listing dataset.
//
// The dataset is three kinds of JSON document:
//   - the country index (countries.json), a list of {code} entries,
//   - one shard per country (properties/<CODE>.json), an array of raw listing records,
//   - the store directory (stores.json), used for the agent cross-reference.
//
// A Source hides whether those documents live on the local filesystem (FileSource)
// or in an S3/MinIO bucket (BucketSource). Sources return raw bytes; decoding,
// memoization and the degrade-to-empty policy belong to the property feature.
package dataset
