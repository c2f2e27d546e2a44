// Package image provides utilities for loading and saving image files.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Loader handles loading images.
type Loader interface {
	// Load loads an image from the given path and reports its format name.
	Load(path string) (image.Image, string, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
// Every failure is returned as a *DecodeError.
func (l *FileLoader) Load(path string) (image.Image, string, error) {
	// Validate path.
	if path == "" {
		return nil, "", &DecodeError{Path: path, Err: fmt.Errorf("image path cannot be empty")}
	}

	// Check if file exists.
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", &DecodeError{Path: path, Err: fmt.Errorf("image file not found: %w", err)}
		}
		return nil, "", &DecodeError{Path: path, Err: fmt.Errorf("failed to stat image file: %w", err)}
	}

	// Check if it's a directory.
	if info.IsDir() {
		return nil, "", &DecodeError{Path: path, Err: fmt.Errorf("path is a directory, not a file")}
	}

	// Open the file.
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: fmt.Errorf("failed to open image file: %w", err)}
	}
	defer file.Close()

	// Decode the image.
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	return img, format, nil
}

// SupportedImageExtensions returns the extensions that can be decoded.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// WritableImageExtensions returns the extensions that can be written back.
// WebP has a decoder only.
func WritableImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff"}
}

// GetImageDimensions returns the width and height of an image without fully loading it.
func GetImageDimensions(path string) (width, height int, err error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: fmt.Errorf("failed to open image: %w", err)}
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: fmt.Errorf("failed to decode image config: %w", err)}
	}

	return config.Width, config.Height, nil
}
