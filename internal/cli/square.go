package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/squarer/internal/image"
	"github.com/jmylchreest/squarer/internal/logging"
	"github.com/jmylchreest/squarer/internal/square"
)

// runSquare executes the root command.
func runSquare(cmd *cobra.Command, opts *rootOptions, path string) error {
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)

	fmt.Fprintf(cmd.OutOrStdout(), "Squaring %s\n", path)

	return squareFile(image.NewFileLoader(), path, logger)
}

// squareFile loads the image at path, squares it and writes it back over path.
// Any failure leaves path as it was.
func squareFile(loader image.Loader, path string, logger hclog.Logger) error {
	img, format, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image decoded", "path", path, "format", format, "width", bounds.Dx(), "height", bounds.Dy())

	result, err := square.Square(img, square.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to square image: %w", err)
	}

	g := result.Geometry
	logger.Debug("canvas composed",
		"side", g.Side,
		"ratio", g.Ratio,
		"offset_x", g.OffsetX,
		"offset_y", g.OffsetY,
		"background", result.Background.Hex(),
	)

	if err := image.WriteAtomic(path, result.Image); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	logger.Debug("image written", "path", path)
	return nil
}
