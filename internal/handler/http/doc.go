// Package http implements the HTTP transport layer of the cash card server.
//
// It wires the chi router, the card handlers and the middleware chain:
// request tracing, access logging, timeouts, gzip, HTTP Basic
// authentication with a role check and the optional HashSHA256 integrity
// check. Requests are then delegated to the service layer.
package http
