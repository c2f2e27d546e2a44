// Package square pads an image onto a square canvas.
//
// The canvas side is the longer edge of the source image. The source is
// passed through a resampling filter, centred on the canvas, and the
// exposed border is filled with a single colour sampled from the source.
// Nothing in this package touches the filesystem.
package square

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/jmylchreest/squarer/internal/colour"
)

// DefaultSampleX and DefaultSampleY locate the background sample pixel.
const (
	DefaultSampleX = 3
	DefaultSampleY = 3
)

// Options controls the squaring pipeline.
type Options struct {
	// Filter is the resampling filter used for the resize step.
	Filter imaging.ResampleFilter
	// SampleX and SampleY are the local coordinates of the background sample.
	SampleX, SampleY int
}

// DefaultOptions returns Lanczos resampling and a background sample at (3, 3).
func DefaultOptions() Options {
	return Options{
		Filter:  imaging.Lanczos,
		SampleX: DefaultSampleX,
		SampleY: DefaultSampleY,
	}
}

// Result holds the composed canvas and the values used to build it.
type Result struct {
	Image      *image.RGBA
	Geometry   Geometry
	Background colour.RGB
}

// Square pads img onto a square canvas.
func Square(img image.Image, opts Options) (*Result, error) {
	bounds := img.Bounds()
	geom, err := ComputeGeometry(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	resized := Resize(img, geom.Width, geom.Height, opts.Filter)

	bg, err := SampleBackground(resized, opts.SampleX, opts.SampleY)
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas(geom.Side, bg)
	Paste(canvas, resized, geom.Offset())

	return &Result{
		Image:      canvas,
		Geometry:   geom,
		Background: bg,
	}, nil
}

// Resize resamples img to w by h. The resample always runs, even when the
// size is unchanged, and the result always has its origin at (0, 0).
func Resize(img image.Image, w, h int, filter imaging.ResampleFilter) *image.NRGBA {
	return imaging.Resize(img, w, h, filter)
}

// SampleBackground returns the colour at (x, y) relative to the image origin.
func SampleBackground(img image.Image, x, y int) (colour.RGB, error) {
	b := img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if x < 0 || y < 0 || !p.In(b) {
		return colour.RGB{}, &SampleOutOfBoundsError{X: x, Y: y, Width: b.Dx(), Height: b.Dy()}
	}
	return colour.ToRGB(img.At(p.X, p.Y)), nil
}

// NewCanvas returns an opaque side by side canvas filled with bg.
func NewCanvas(side int, bg colour.RGB) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg.RGBA()}, image.Point{}, xdraw.Src)
	return canvas
}

// Paste copies src onto canvas with its top-left corner at offset.
// Alpha is discarded: every written pixel keeps the source's straight
// RGB values and becomes fully opaque. Pixels falling outside the canvas
// are clipped.
func Paste(canvas *image.RGBA, src image.Image, offset image.Point) {
	sb := src.Bounds()
	dst := sb.Sub(sb.Min).Add(offset).Intersect(canvas.Bounds())
	if dst.Empty() {
		return
	}

	n, ok := src.(*image.NRGBA)
	if !ok {
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			for x := dst.Min.X; x < dst.Max.X; x++ {
				c := colour.ToRGB(src.At(x-offset.X+sb.Min.X, y-offset.Y+sb.Min.Y))
				canvas.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
		return
	}

	width := dst.Dx()
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		si := n.PixOffset(dst.Min.X-offset.X+sb.Min.X, y-offset.Y+sb.Min.Y)
		di := canvas.PixOffset(dst.Min.X, y)
		srow := n.Pix[si : si+width*4 : si+width*4]
		drow := canvas.Pix[di : di+width*4 : di+width*4]
		for i := 0; i < len(srow); i += 4 {
			drow[i+0] = srow[i+0]
			drow[i+1] = srow[i+1]
			drow[i+2] = srow[i+2]
			drow[i+3] = 0xff
		}
	}
}
