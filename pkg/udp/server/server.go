package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/cbodonnell/udpsend/pkg/command"
	"github.com/cbodonnell/udpsend/pkg/logger"
	"github.com/pion/logging"
	"github.com/pion/udp"
)

const (
	DefaultPort       = 12345
	DefaultBufferSize = 1024
)

// UDPServer prints every command datagram it receives and reports the
// moves it understands. It never replies.
type UDPServer struct {
	port       uint
	bufferSize uint
	out        io.Writer
	log        logging.LeveledLogger

	mu sync.Mutex
}

type UDPServerOpts struct {
	Port       uint
	BufferSize uint
	// Out receives one report per datagram. Defaults to os.Stdout.
	Out   io.Writer
	Debug bool
}

func NewUDPServer(opts UDPServerOpts) *UDPServer {
	bufferSize := opts.BufferSize
	if bufferSize == 0 {
		bufferSize = DefaultBufferSize
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &UDPServer{
		port:       opts.Port,
		bufferSize: bufferSize,
		out:        out,
		log:        logger.New("server", opts.Debug, os.Stderr),
	}
}

func (s *UDPServer) Run() error {
	listener, err := s.Listen()
	if err != nil {
		return err
	}
	defer listener.Close()

	s.printf("Serveur en écoute sur %s\n", listener.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Serve(listener)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	select {
	case <-interrupt:
		return errors.New("interrupted")
	case err := <-errChan:
		return fmt.Errorf("error serving: %w", err)
	}
}

func (s *UDPServer) Listen() (net.Listener, error) {
	listenAddr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve listen address: %w", err)
	}

	listener, err := udp.Listen("udp4", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	return listener, nil
}

// Serve handles every peer accepted by listener until it is closed. It
// returns nil once the listener is closed.
func (s *UDPServer) Serve(listener net.Listener) error {
	var wg sync.WaitGroup
	peers := make(map[string]net.Conn)
	var peersLock sync.Mutex

	// closing the listener or a peer does not unblock a pending Read,
	// an expired read deadline does
	defer func() {
		peersLock.Lock()
		for _, conn := range peers {
			if err := conn.SetReadDeadline(time.Now()); err != nil {
				s.log.Warnf("failed to set read deadline for %s: %s", conn.RemoteAddr().String(), err.Error())
			}
			conn.Close()
		}
		peersLock.Unlock()
		wg.Wait()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, udp.ErrClosedListener) {
				return nil
			}
			return fmt.Errorf("failed to accept: %w", err)
		}

		peer := conn.RemoteAddr().String()
		s.log.Debugf("new peer %s", peer)

		peersLock.Lock()
		peers[peer] = conn
		peersLock.Unlock()

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handlePeer(conn)

			peersLock.Lock()
			delete(peers, peer)
			peersLock.Unlock()
		}()
	}
}

func (s *UDPServer) handlePeer(conn net.Conn) {
	defer conn.Close()

	for {
		buffer := make([]byte, s.bufferSize)
		n, err := conn.Read(buffer)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.log.Debugf("stopped reading from %s", conn.RemoteAddr().String())
				return
			}
			if !errors.Is(err, io.EOF) {
				s.log.Warnf("failed to read from %s: %s", conn.RemoteAddr().String(), err.Error())
			}
			return
		}

		s.log.Debugf("received %d bytes from %s", n, conn.RemoteAddr().String())
		s.handleMessage(string(buffer[:n]))
	}
}

func (s *UDPServer) handleMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "Reçu : %s\n", message)

	move, err := command.Parse(message)
	if err != nil {
		fmt.Fprintf(s.out, "Commande réseau invalide: %s\n", message)
		return
	}

	fmt.Fprintf(s.out, "Déplacement de %s vers (%d, %d)\n", move.Unit, move.X, move.Y)
}

func (s *UDPServer) printf(format string, a ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, a...)
}
