package main

import (
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withStdin runs f with stdin reading input.
func withStdin(t *testing.T, input string, f func()) {
	t.Helper()
	in, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer in.Close()

	_, err = in.WriteString(input)
	require.NoError(t, err)
	_, err = in.Seek(0, 0)
	require.NoError(t, err)

	stdin := os.Stdin
	os.Stdin = in
	defer func() { os.Stdin = stdin }()

	f()
}

func closedPort(t *testing.T) string {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	addr := conn.LocalAddr().String()
	require.NoError(t, conn.Close())
	return addr
}

func TestRunExitStatus(t *testing.T) {
	withStdin(t, "exit\n", func() {
		assert.Equal(t, 0, run([]string{"client", "127.0.0.1:12345"}))
	})

	// sends keep going to an unreachable port and end of input exits cleanly
	withStdin(t, "mov v1 (10,5)\nmov v1 (11,5)\n", func() {
		assert.Equal(t, 0, run([]string{"client", closedPort(t)}))
	})

	withStdin(t, "mov v1 (10,5)\n", func() {
		assert.Equal(t, 1, run([]string{"client", "not an address"}))
	})

	assert.Equal(t, 2, run([]string{"relay"}))
}

func TestRunDefaultsToClient(t *testing.T) {
	withStdin(t, "exit\n", func() {
		assert.Equal(t, 0, run(nil))
	})
}
