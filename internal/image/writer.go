package image

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// JPEGQuality is the quality used when writing JPEG output.
const JPEGQuality = 95

// FormatFromPath returns the output format implied by the path's extension.
func FormatFromPath(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, &EncodeError{Path: path, Err: fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)}
	}
	return format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality))
}

// WriteAtomic encodes img in the format implied by path and replaces path
// with the result. The image is first written to a temporary file in the
// same directory, then renamed over path, so a failed encode leaves any
// existing file untouched. The file mode of an existing file is kept.
// When path is a symlink the file it points to is replaced and the link
// is left in place.
func WriteAtomic(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	target, err := resolveTarget(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to create temporary file: %w", err)}
	}
	tmpPath := tmp.Name()

	// Only the success path clears tmpPath.
	defer func() {
		if tmpPath != "" {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := Encode(tmp, img, format); err != nil {
		_ = tmp.Close()
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to encode %s: %w", format, err)}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to sync temporary file: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to close temporary file: %w", err)}
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to set file mode: %w", err)}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to replace file: %w", err)}
	}

	tmpPath = ""
	return nil
}

// resolveTarget follows symlinks in path. A path that does not exist yet
// is returned unchanged.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return target, nil
}
