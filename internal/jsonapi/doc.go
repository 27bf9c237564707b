// Package jsonapi holds the JSON:API wire format used by the HTTP layer:
// top-level documents, resource objects, error objects and the rendering
// of pointer-addressed validation messages.
package jsonapi
