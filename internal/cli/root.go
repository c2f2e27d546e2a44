// Package cli provides the command-line interface for squarer.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/squarer/internal/image"
	"github.com/jmylchreest/squarer/internal/version"
)

// ErrInvalidArgumentCount is returned unless exactly one path is given.
var ErrInvalidArgumentCount = errors.New("I need an image file path as argument")

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// rootOptions holds the values of the global flags.
type rootOptions struct {
	verbose bool
}

// NewRootCmd creates the squarer command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "squarer <image>",
		Short: "Pad an image onto a square canvas in place",
		Long: fmt.Sprintf(`Squarer pads an image onto a square canvas whose side is the image's
longer edge. The image is centred and the new border is filled with the
colour found at pixel (3, 3) of the original. The file is overwritten in
its original format; images must be at least 4x4 pixels.

Readable formats: %s
Writable formats: %s

Examples:
  # Square a wallpaper in place
  squarer wallpaper.png

  # Show each pipeline step
  squarer -v cover.jpg`,
			strings.Join(image.SupportedImageExtensions(), ", "),
			strings.Join(image.WritableImageExtensions(), ", ")),
		Version:      version.Short(),
		Args:         exactlyOnePath,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSquare(cmd, opts, args[0])
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	registerFlags(cmd.Flags(), opts)

	return cmd
}

// registerFlags adds the global flags to flags.
func registerFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
}

// exactlyOnePath accepts a single positional argument.
func exactlyOnePath(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return ErrInvalidArgumentCount
	}
	return nil
}

// ExitCode maps the error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgumentCount):
		return ExitUsage
	default:
		return ExitFailure
	}
}
