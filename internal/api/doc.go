// Package api handles incoming HTTP requests for the authors resource:
// request document validation, JSON:API serialization and the CRUD handlers.
// It translates HTTP concerns into store operations and maps store and auth
// errors onto JSON:API error documents.
package api
