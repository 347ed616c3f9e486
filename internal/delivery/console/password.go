package console

import (
	"fmt"
	"io"
	"os"

	"usermgr/internal/errors"

	"golang.org/x/term"
)

// PasswordReader reads a secret without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

type terminalPasswordReader struct {
	fd  int
	out io.Writer
}

// NewTerminalPasswordReader returns a reader bound to stdin, or nil when stdin
// is not a terminal. A nil reader makes the menu read passwords as plain lines.
func NewTerminalPasswordReader(out io.Writer) PasswordReader {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	return &terminalPasswordReader{fd: fd, out: out}
}

func (r *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	secret, err := term.ReadPassword(r.fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return string(secret), nil
}
