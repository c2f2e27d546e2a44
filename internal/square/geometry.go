package square

import (
	"fmt"
	"image"
	"math"
)

// Geometry describes how a source image is placed on its square canvas.
type Geometry struct {
	// Side is the canvas edge length, max(width, height) of the source.
	Side int
	// Ratio is the scale applied to the source. Side is derived from the
	// source itself, so this is always 1.
	Ratio float64
	// Width and Height are the dimensions of the resized content.
	Width, Height int
	// OffsetX and OffsetY locate the content on the canvas. Any odd pixel
	// left over ends up on the right or bottom edge.
	OffsetX, OffsetY int
}

// ComputeGeometry returns the placement of a w by h image on its square canvas.
func ComputeGeometry(w, h int) (Geometry, error) {
	if w <= 0 || h <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}

	side := max(w, h)
	ratio := float64(side) / float64(max(w, h))
	newW := int(math.Round(float64(w) * ratio))
	newH := int(math.Round(float64(h) * ratio))

	return Geometry{
		Side:    side,
		Ratio:   ratio,
		Width:   newW,
		Height:  newH,
		OffsetX: (side - newW) / 2,
		OffsetY: (side - newH) / 2,
	}, nil
}

// Offset returns the content offset as a point.
func (g Geometry) Offset() image.Point {
	return image.Pt(g.OffsetX, g.OffsetY)
}

// ContentRect returns the canvas rectangle covered by the resized content.
func (g Geometry) ContentRect() image.Rectangle {
	return image.Rect(g.OffsetX, g.OffsetY, g.OffsetX+g.Width, g.OffsetY+g.Height)
}
