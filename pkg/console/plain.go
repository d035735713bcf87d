package console

import (
	"bufio"
	"fmt"
	"io"
)

// Plain reads newline terminated lines from any reader. Lines longer than
// the buffer are split: the overflow is returned by the next Prompt.
type Plain struct {
	r   *bufio.Reader
	w   io.Writer
	max int
}

func NewPlain(r io.Reader, w io.Writer, bufferSize uint) *Plain {
	return &Plain{
		r:   bufio.NewReader(r),
		w:   w,
		max: maxLine(bufferSize),
	}
}

func (p *Plain) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

func (p *Plain) Prompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.w, prompt); err != nil {
		return "", err
	}

	line := make([]byte, 0, p.max)
	for len(line) < p.max {
		b, err := p.r.ReadByte()
		if err != nil {
			// a final line without terminator is still a line
			if err == io.EOF && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}

	return string(line), nil
}
