// Package prompt reads operator answers from a terminal or any line
// oriented input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	secretFD int
}

// New returns a Prompter asking questions on out and reading answers from
// in. When in is a terminal, secrets are read with echo disabled.
func New(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		secretFD: -1,
	}
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		prompter.secretFD = int(file.Fd())
	}
	return prompter
}

// Ask prints question and returns the trimmed answer. End of input yields
// whatever was read so far, possibly an empty answer.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}

	return strings.TrimSpace(line), nil
}

// AskSecret is Ask without echo when reading from a terminal.
func (p *Prompter) AskSecret(question string) (string, error) {
	if p.secretFD < 0 {
		return p.Ask(question)
	}

	fmt.Fprint(p.out, question)
	secret, err := term.ReadPassword(p.secretFD)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// Confirm asks a yes/no question. Only "y" or "Y" counts as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
