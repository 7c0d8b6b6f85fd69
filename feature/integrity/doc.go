// Package integrity checks that the listing dataset and its collaborators are
// in a state the resolver can serve.
//
// # Checks Provided
//
//   - Structure: with the bucket dataset driver, checks that the country index,
//     the store file and one shard per indexed country exist as objects.
//   - Dataset: per country, counts records and lists records without a slug or id,
//     slugs that are not URL-safe (with a suggested slug), and slugs shadowed by
//     an earlier record in scan order.
//   - Stores: with the database store directory, validates the stores table
//     columns against the store model.
//
// Checks that do not apply to the configured backends report "skipped".
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check.
//   - GET /integrity/dataset : Runs dataset check.
//   - GET /integrity/stores : Runs stores schema check.
package integrity
