// Package logging builds the structured logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// Name is the logger name shown on every line.
const Name = "squarer"

// New returns a logger writing to out. Debug output is enabled when verbose
// is set, otherwise only warnings and errors are shown. Colour is used only
// when out is a terminal.
func New(out io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	colour := hclog.ColorOff
	if isTerminal(out) {
		colour = hclog.ForceColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        Name,
		Output:      out,
		Level:       level,
		Color:       colour,
		DisableTime: true,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
