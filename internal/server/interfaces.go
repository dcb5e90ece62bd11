package server

// Server is the lifecycle of the contact book process.
//
// RunServer blocks until the process receives a termination signal or the
// listener fails. Shutdown drains in-flight requests.
type Server interface {
	RunServer()

	Shutdown()
}
