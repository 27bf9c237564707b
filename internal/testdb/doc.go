//go:build integration

// Package testdb provides PostgreSQL helpers for integration tests.
//
// Tests obtain a migrated connection with GetTestDB and isolate their writes
// with WithTx, which always rolls back:
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDB(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			authors := postgres.NewPostgresAuthorStore(tx)
//			// ...
//		})
//	}
//
// When no database URL is configured the calling test is skipped.
package testdb
