package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// readInput reads all of name, or the app's reader if name is
// "-".
func readInput(c *cli.Context, name string) ([]byte, error) {
	if name == "-" {
		b, err := io.ReadAll(c.App.Reader)
		return b, errors.Wrap(err, "could not read stdin")
	}
	b, err := os.ReadFile(name)
	return b, errors.WithStack(err)
}

// writeOutput writes b to name, or to the app's writer if name
// is "-".
func writeOutput(c *cli.Context, name string, b []byte) error {
	if name == "-" {
		_, err := c.App.Writer.Write(b)
		return errors.Wrap(err, "could not write stdout")
	}
	return errors.WithStack(os.WriteFile(name, b, 0o644))
}

// wrapLines inserts a line break after every n bytes of b.
func wrapLines(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	out := make([]byte, 0, len(b)+len(b)/n)
	for len(b) > n {
		out = append(out, b[:n]...)
		out = append(out, '\n')
		b = b[n:]
	}
	return append(out, b...)
}
