// Package catalog holds the read-only movie list and the views derived from it.
//
// A [Store] is built once from a slice of movies (usually [Seed]) and never
// mutated afterwards, so it is safe for concurrent readers without locking.
//
// Derived views:
//   - [Store.Featured] : first four movies by insertion order
//   - [Store.Newest] : four most recent releases, ties kept in insertion order
//   - [Store.Search] : title substring and genre filter
package catalog
