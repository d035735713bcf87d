package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cbodonnell/udpsend/pkg/console"
	"github.com/cbodonnell/udpsend/pkg/net"
	udpclient "github.com/cbodonnell/udpsend/pkg/udp/client"
)

type ClientOpts struct {
	ServerAddress string
	Console       console.Console
	Stderr        io.Writer
	Debug         bool
}

func ClientCmd(args []string) error {
	var bufferSize uint
	var debug bool
	var lineEditing bool

	clientCmd := flag.NewFlagSet("client", flag.ExitOnError)
	clientCmd.UintVar(&bufferSize, "buffer-size", console.DefaultBufferSize, "The maximum size of an input line, terminator included")
	clientCmd.BoolVar(&debug, "debug", false, "Print debug messages")
	clientCmd.BoolVar(&lineEditing, "line-editing", false, "Enable line editing and history when stdin is a terminal")
	clientCmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s client [flags] [serverAddress]\n", os.Args[0])
		clientCmd.PrintDefaults()
	}
	clientCmd.Parse(args)

	serverAddress := clientCmd.Arg(0)
	if serverAddress == "" {
		serverAddress = udpclient.DefaultServerAddress
	}

	con, restore, err := console.Open(os.Stdin, os.Stdout, bufferSize, lineEditing)
	if err != nil {
		return fmt.Errorf("error opening console: %w", err)
	}
	defer restore()

	client, err := NewClient(ClientOpts{
		ServerAddress: serverAddress,
		Console:       con,
		Stderr:        console.Stderr(con),
		Debug:         debug,
	})
	if err != nil {
		return fmt.Errorf("error creating client: %w", err)
	}

	return client.Run()
}

func NewClient(opts ClientOpts) (net.Client, error) {
	return udpclient.NewUDPClient(udpclient.UDPClientOpts{
		ServerAddress: opts.ServerAddress,
		Console:       opts.Console,
		Stderr:        opts.Stderr,
		Debug:         opts.Debug,
	})
}
