package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptReader reads menu choices and passwords from the command's input.
// When the input is a terminal, passwords are read without echo.
type promptReader struct {
	in       *bufio.Reader
	prompt   io.Writer
	fd       int
	terminal bool
}

// newPromptReader wraps cmd's stdin. Prompts go to promptOut.
func newPromptReader(cmd *cobra.Command, promptOut io.Writer) *promptReader {
	r := &promptReader{
		in:     bufio.NewReader(cmd.InOrStdin()),
		prompt: promptOut,
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.terminal = true
	}
	return r
}

// ReadLine prints prompt and returns the next line without its line ending.
// io.EOF is returned only when no data was read.
func (r *promptReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.prompt, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prints prompt and reads a password, hiding it on a terminal.
func (r *promptReader) ReadPassword(prompt string) (string, error) {
	if !r.terminal {
		return r.ReadLine(prompt)
	}

	fmt.Fprint(r.prompt, prompt)
	b, err := term.ReadPassword(r.fd)
	fmt.Fprintln(r.prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}
