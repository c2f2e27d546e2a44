package square

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImage is returned when an image has no pixels in either dimension.
	ErrEmptyImage = errors.New("image has zero width or height")

	// ErrSampleOutOfBounds is matched by every SampleOutOfBoundsError.
	ErrSampleOutOfBounds = errors.New("background sample point out of bounds")
)

// SampleOutOfBoundsError reports an image too small to sample the background from.
type SampleOutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *SampleOutOfBoundsError) Error() string {
	return fmt.Sprintf("cannot sample background at (%d, %d) of a %dx%d image: minimum size is %dx%d",
		e.X, e.Y, e.Width, e.Height, e.X+1, e.Y+1)
}

// Is lets errors.Is match against ErrSampleOutOfBounds.
func (e *SampleOutOfBoundsError) Is(target error) bool {
	return target == ErrSampleOutOfBounds
}
