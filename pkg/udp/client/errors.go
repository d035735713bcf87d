package client

import "fmt"

// SocketCreationError is returned by Run when the socket to the server
// could not be created. Nothing has been sent.
type SocketCreationError struct {
	Err error
}

func (e *SocketCreationError) Error() string {
	return fmt.Sprintf("Erreur lors de la création du socket: %s", e.Err.Error())
}

func (e *SocketCreationError) Unwrap() error {
	return e.Err
}

// SendError reports a datagram that could not be written. It ends the
// command loop but is not returned from Run.
type SendError struct {
	Line string
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("Erreur lors de l'envoi des données: %s", e.Err.Error())
}

func (e *SendError) Unwrap() error {
	return e.Err
}
