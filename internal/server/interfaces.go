package server

// Server runs the inbound transport until a stop signal arrives.
type Server interface {
	RunServer()
	Shutdown()
}
