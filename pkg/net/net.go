package net

// Client is a long running process that sends to a remote endpoint.
type Client interface {
	Run() error
}

// Server is a long running process that receives from remote peers.
type Server interface {
	Run() error
}
