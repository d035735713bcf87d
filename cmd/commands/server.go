package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/udpsend/pkg/net"
	udpserver "github.com/cbodonnell/udpsend/pkg/udp/server"
)

type ServerOpts struct {
	Port       uint
	BufferSize uint
	Debug      bool
}

func ServerCmd(args []string) error {
	var port uint
	var bufferSize uint
	var debug bool

	serverCmd := flag.NewFlagSet("server", flag.ExitOnError)
	serverCmd.UintVar(&port, "port", udpserver.DefaultPort, "The port to listen on")
	serverCmd.UintVar(&bufferSize, "buffer-size", udpserver.DefaultBufferSize, "The maximum size of a datagram")
	serverCmd.BoolVar(&debug, "debug", false, "Print debug messages")
	serverCmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s server [flags]\n", os.Args[0])
		serverCmd.PrintDefaults()
	}
	serverCmd.Parse(args)

	return NewServer(ServerOpts{
		Port:       port,
		BufferSize: bufferSize,
		Debug:      debug,
	}).Run()
}

func NewServer(opts ServerOpts) net.Server {
	return udpserver.NewUDPServer(udpserver.UDPServerOpts{
		Port:       opts.Port,
		BufferSize: opts.BufferSize,
		Debug:      opts.Debug,
	})
}
