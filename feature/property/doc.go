// Package property resolves real-estate listings from per-country JSON shards
// into one canonical Property schema.
//
// # Components
//
//   - Field normalizers (NormalizeRooms, NormalizeHeating, NormalizeFurnishing,
//     NormalizeCategory, NormalizeType): total functions mapping loose input onto
//     closed value sets, each with a fixed fallback.
//   - Normalizer: builds a Property from a raw record. Groups start from their
//     defaults, raw group keys are merged, then legacy "features" keys overwrite
//     them. The agent is cross-referenced against a store.Finder; any failure
//     leaves StoreID empty.
//   - ShardCache: loads the country index and each shard once per process.
//     Read failures are logged and served as empty collections.
//   - Resolver: finds a record by slug or id, scanning countries and shards in
//     stored order. Hits and misses are memoized, and concurrent lookups of the
//     same pair share one scan.
//
// # Routes
//
//	GET /properties/:slug?id=
//	GET /properties/id/:id
package property
