// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, the embedded goose
// migrations that create their tables, and connection setup through the pgx
// database/sql driver.
package postgres
