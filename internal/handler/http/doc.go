// Package http implements the HTTP transport layer of the portal service.
//
// It exposes route wiring, request handlers, and middleware for the read-only
// portal API. Request tracing, access logging and response compression are
// handled here before requests are delegated to the service layer.
package http
