package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console implements UserInterface over plain terminal streams.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewConsole builds a console UI bound to stdin/stdout/stderr.
func NewConsole() *Console {
	return NewConsoleWith(os.Stdin, os.Stdout, os.Stderr)
}

// NewConsoleWith builds a console UI over the given streams. Used by tests.
func NewConsoleWith(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// Input shows the prompt and reads one line.
func (c *Console) Input(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// Message prints an informational line.
func (c *Console) Message(message string) {
	fmt.Fprintln(c.out, message)
}

// Error prints an error line to the error stream.
func (c *Console) Error(message string) {
	fmt.Fprintln(c.errOut, "ERROR: "+message)
}

// Confirm asks a yes/no question; only Y or y counts as yes.
func (c *Console) Confirm(prompt string) bool {
	answer := c.Input(prompt + " (Y/N): ")
	return strings.EqualFold(answer, "Y")
}

// MaskSecret replaces every character with an asterisk.
func (c *Console) MaskSecret(secret string) string {
	return strings.Repeat("*", len(secret))
}
