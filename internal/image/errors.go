package image

import "errors"

var (
	// ErrDecode is matched by every DecodeError.
	ErrDecode = errors.New("decode error")

	// ErrEncode is matched by every EncodeError.
	ErrEncode = errors.New("encode error")
)

// DecodeError reports a path that could not be read as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "cannot decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is match against ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError reports an image that could not be written to Path.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return "cannot encode " + e.Path + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Is lets errors.Is match against ErrEncode.
func (e *EncodeError) Is(target error) bool { return target == ErrEncode }
