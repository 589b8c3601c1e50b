// Package http implements the HTTP transport layer of the marketplace API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging,
// metrics, CORS and panic recovery are handled in this package before
// requests are delegated to the service layer. Every response body is JSON
// of the form {"message": ...} unless a resource is returned.
package http
