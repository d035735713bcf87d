package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const DefaultBufferSize = 1024

// Console prompts for one line of input at a time. Writes go to the same
// display the prompt is shown on.
type Console interface {
	io.Writer
	// Prompt shows prompt and blocks until a line is read. The returned
	// line may still carry its trailing "\n". io.EOF reports closed input.
	Prompt(prompt string) (string, error)
}

// Open returns a Terminal when lineEditing is requested and in is a TTY,
// and a Plain console otherwise. restore must be called before exiting.
func Open(in, out *os.File, bufferSize uint, lineEditing bool) (c Console, restore func(), err error) {
	fd := int(in.Fd())
	if !lineEditing || !term.IsTerminal(fd) {
		return NewPlain(in, out, bufferSize), func() {}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make terminal raw: %w", err)
	}

	rw := struct {
		io.Reader
		io.Writer
	}{in, out}

	return NewTerminal(rw, bufferSize), func() {
		term.Restore(fd, state)
	}, nil
}

// maxLine is the most bytes a single read returns, one slot of the buffer
// being reserved for the terminator.
func maxLine(bufferSize uint) int {
	if bufferSize < 2 {
		bufferSize = DefaultBufferSize
	}
	return int(bufferSize) - 1
}

// Stderr returns where diagnostics for c should go. A raw mode Terminal
// needs them to pass through its "\r\n" translation.
func Stderr(c Console) io.Writer {
	if t, ok := c.(*Terminal); ok {
		return t
	}
	return os.Stderr
}
