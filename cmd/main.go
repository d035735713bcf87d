package main

import (
	"log"
	"os"
	"strings"

	"github.com/cbodonnell/udpsend/cmd/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status: nonzero only when the command
// itself fails, as a socket creation failure does.
func run(args []string) int {
	// no subcommand runs the client
	command := "client"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	var err error
	switch command {
	case "client":
		err = commands.ClientCmd(args)
	case "server":
		err = commands.ServerCmd(args)
	default:
		log.Printf("Usage: %s [command[client|server]]\nUnknown command: %s\n", os.Args[0], command)
		return 2
	}
	if err != nil {
		log.Println(err)
		return 1
	}
	return 0
}
