package server

// Server is a transport server (HTTP or gRPC) or the combination of both.
type Server interface {
	// RunServer serves until the process receives SIGINT, SIGTERM or
	// SIGQUIT, or until serving fails.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
