// Package repositories implements the [models.SlotStore] backends.
//
// Key Implementations:
//   - [SlotRepository] : SQLite table of key/value rows, the default on-disk profile
//   - [RedisSlotStore] : Redis strings under a configurable key prefix
//   - [MemorySlotStore] : process-local map, used for ephemeral runs and tests
//
// All backends store opaque bytes; serialization belongs to the state adapters.
// A missing key is reported through the found flag of Get, never as an error.
package repositories
