package client

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/cbodonnell/udpsend/pkg/console"
	"github.com/cbodonnell/udpsend/pkg/logger"
	"github.com/pion/logging"
)

const (
	DefaultServerAddress = "127.0.0.1:12345"

	ExitCommand = "exit"

	prompt = "Entrez une commande (ex: mov v1 (10,5), ou 'exit' pour quitter) : "
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Terminated:
		return "TERMINATED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// socket is the sending side of an unconnected UDP socket. ICMP errors
// caused by one datagram are never reported on a later send.
type socket interface {
	WriteTo(b []byte, addr net.Addr) (int, error)
	Close() error
}

type socketFunc func() (socket, error)

func listenUDP() (socket, error) {
	return net.ListenUDP("udp4", nil)
}

type UDPClient struct {
	serverAddress string
	console       console.Console
	stderr        io.Writer
	log           logging.LeveledLogger
	newSocket     socketFunc
	state         State
}

type UDPClientOpts struct {
	ServerAddress string
	Console       console.Console
	// Stderr receives send and socket diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
	Debug  bool
}

func NewUDPClient(opts UDPClientOpts) (*UDPClient, error) {
	if opts.Console == nil {
		return nil, errors.New("console is required")
	}

	serverAddress := opts.ServerAddress
	if serverAddress == "" {
		serverAddress = DefaultServerAddress
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &UDPClient{
		serverAddress: serverAddress,
		console:       opts.Console,
		stderr:        stderr,
		log:           logger.New("client", opts.Debug, stderr),
		newSocket:     listenUDP,
		state:         Running,
	}, nil
}

func (c *UDPClient) State() State {
	return c.state
}

// Run sends every line read from the console to the server until "exit",
// end of input or a failed send. Only a socket creation failure is
// returned as an error.
func (c *UDPClient) Run() error {
	serverAddr, err := net.ResolveUDPAddr("udp4", c.serverAddress)
	if err != nil {
		c.state = Terminated
		return &SocketCreationError{Err: fmt.Errorf("failed to resolve server address: %w", err)}
	}

	conn, err := c.newSocket()
	if err != nil {
		c.state = Terminated
		return &SocketCreationError{Err: err}
	}

	c.serve(conn, serverAddr)

	fmt.Fprintln(c.console, "Client terminé.")
	return nil
}

func (c *UDPClient) serve(conn socket, serverAddr *net.UDPAddr) {
	defer func() {
		if err := conn.Close(); err != nil {
			c.log.Warnf("failed to close socket: %s", err.Error())
		}
		c.state = Terminated
	}()

	fmt.Fprintf(c.console, "Client UDP prêt à envoyer des commandes au serveur %s\n", serverAddr.String())

	for {
		line, err := c.console.Prompt(prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.log.Warnf("failed to read command: %s", err.Error())
			}
			c.log.Debugf("input closed")
			return
		}

		line = strings.TrimSuffix(line, "\n")
		if line == ExitCommand {
			return
		}

		if err := c.send(conn, serverAddr, line); err != nil {
			fmt.Fprintln(c.stderr, err.Error())
			return
		}

		fmt.Fprintf(c.console, "Commande envoyée : %s\n", line)
	}
}

func (c *UDPClient) send(conn socket, serverAddr *net.UDPAddr, line string) error {
	n, err := conn.WriteTo([]byte(line), serverAddr)
	if err != nil {
		return &SendError{Line: line, Err: err}
	}

	c.log.Debugf("sent %d bytes to %s", n, serverAddr.String())

	return nil
}
