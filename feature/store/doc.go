// Package store implements the store (agency) directory used to attach a storeId
// to a listing from the identity of its agent.
//
// Two Finder implementations exist:
//   - Directory reads stores.json from the dataset Source once and answers from an
//     in-memory index (email, phone, company/store name, listed agent names).
//   - DBDirectory queries the relational stores table through GORM.
//
// Matching is best-effort. Callers treat any error from a Finder as "no match".
package store
