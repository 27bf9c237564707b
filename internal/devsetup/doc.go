// Package devsetup prepares a development environment: it resets the schema,
// seeds sample authors, and creates a user holding a personal access token.
//
// The same steps back the authorsctl dev:setup command against PostgreSQL and
// the server's startup when it runs on the in-memory driver.
package devsetup
