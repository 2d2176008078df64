// Package models defines the records shared by the CineVault stores and the persistence interface they write through.
//
// Records:
//   - [Movie] : catalog entry, immutable for the lifetime of the process
//   - [LineItem] : one cart entry pairing a movie with a quantity
//   - [User] : the signed-in profile
//   - [Purchase] : durable ownership of a movie, independent of sign-in
//
// The [SlotStore] interface is the durable key-value store. Each store owns one
// slot ([SlotUser], [SlotPurchases], [SlotCart]) and rewrites it whole on every
// mutation. Implementations live in the repositories package.
package models
