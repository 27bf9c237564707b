// Package testutils provides testing utilities for the authors API.
//
// The package root holds HTTP helpers for driving JSON:API endpoints:
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.DoJSONAPI(t, server, http.MethodPost, "/api/v1/authors", token, body)
//	doc := testutils.DecodeResource(t, resp)
//
// The fixtures subpackage builds random authors and authenticated principals.
package testutils
