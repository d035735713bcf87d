package console

import (
	"io"

	"golang.org/x/term"
)

// Terminal adds line editing and history on top of a raw mode TTY.
type Terminal struct {
	t   *term.Terminal
	max int
}

func NewTerminal(rw io.ReadWriter, bufferSize uint) *Terminal {
	return &Terminal{
		t:   term.NewTerminal(rw, ""),
		max: maxLine(bufferSize),
	}
}

// Write translates "\n" to "\r\n" for the raw terminal.
func (t *Terminal) Write(b []byte) (int, error) {
	return t.t.Write(b)
}

func (t *Terminal) Prompt(prompt string) (string, error) {
	t.t.SetPrompt(prompt)
	line, err := t.t.ReadLine()
	if err != nil {
		return "", err
	}
	if len(line) > t.max {
		line = line[:t.max]
	}
	return line, nil
}
