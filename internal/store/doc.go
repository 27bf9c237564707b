// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the HTTP layer, so handlers can run against PostgreSQL in production and
// the in-memory implementations in tests and local development.
package store
