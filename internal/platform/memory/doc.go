// Package memory provides in-process implementations of the store interfaces.
// They back the server when database.driver is "memory" and are what the HTTP
// layer tests run against. Data lives only as long as the process.
package memory
