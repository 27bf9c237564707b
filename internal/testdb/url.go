//go:build integration

package testdb

import "os"

// Environment variables consulted for the test database, in priority order.
const (
	EnvTestDatabaseURL = "AUTHORS_TEST_DB_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// GetTestDatabaseURL returns the first configured database URL, or "".
func GetTestDatabaseURL() string {
	for _, key := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if url := os.Getenv(key); url != "" {
			return url
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}
