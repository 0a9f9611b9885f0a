// Package store defines the [Store] interface for usage-counter backends and
// provides three implementations:
//
//   - [MemoryStore]: fast, in-memory counters that are lost on restart.
//   - [SQLiteStore]: persistent counters backed by a SQLite database.
//   - [TieredStore]: write-through memory cache over a persistent backend.
//
// Counters record how many requests were admitted per rate-limit category in
// the category's current quota window. They are observational: the live token
// buckets that decide admission are in-process only and never persisted.
//
// Custom backends can be created by implementing the [Store] interface.
package store
