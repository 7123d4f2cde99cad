// Package term adapts the runner's terminal port to plain stdio streams
// and carries the lipgloss presentation used by the demos.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hakel/termdemo/internal/domain"
	"github.com/hakel/termdemo/internal/ports"
)

// Stdio writes lines to a stdout/stderr writer pair and reads input line
// by line. Output writers are used unbuffered so a prompt is visible the
// moment it is written, before the adapter blocks on input.
type Stdio struct {
	out io.Writer
	err io.Writer
	in  *bufio.Reader
}

var _ ports.Terminal = (*Stdio)(nil)

func NewStdio(out, errOut io.Writer, in io.Reader) *Stdio {
	return &Stdio{
		out: out,
		err: errOut,
		in:  bufio.NewReader(in),
	}
}

func (s *Stdio) Print(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Stdio) PrintErr(line string) {
	fmt.Fprintln(s.err, line)
}

func (s *Stdio) Prompt(text string) {
	fmt.Fprint(s.out, text)
}

// ReadLine returns one line without its trailing newline. A stream that
// ends mid-line still yields that final line; a stream that ends before
// any byte reports ErrInputClosed.
func (s *Stdio) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", domain.ErrInputClosed
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
