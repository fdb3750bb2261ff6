// Package server wires and runs the cash card transport servers.
//
// It binds the HTTP and optional gRPC listeners up front, serves both until
// SIGINT, SIGTERM or SIGQUIT arrives and then shuts them down gracefully.
package server
