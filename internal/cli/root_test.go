// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/squarer/internal/cli"
	imgio "github.com/jmylchreest/squarer/internal/image"
	"github.com/jmylchreest/squarer/internal/square"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// writeTestPNG writes a w by h red image with a blue 10x10 top-left block.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := red
			if x < 10 && y < 10 {
				c = blue
			}
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

// execute runs a fresh root command with args and returns its output.
func execute(args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}

func TestSquareCommand(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "wide.png", 100, 50)

	stdout, _, err := execute(path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if want := "Squaring " + path + "\n"; stdout != want {
		t.Errorf("Expected stdout %q, got %q", want, stdout)
	}

	img, _, err := imgio.NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Failed to reload output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("Expected 100x100 output, got %dx%d", b.Dx(), b.Dy())
	}

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{50, 0, blue},  // top band
		{50, 24, blue}, // last border row above
		{50, 25, red},  // first content row
		{5, 30, blue},  // the corner block, shifted down
		{50, 74, red},  // last content row
		{50, 75, blue}, // first border row below
		{99, 99, blue}, // bottom right
	}
	for _, c := range checks {
		r, g, b, a := img.At(c.x, c.y).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		if got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestSquareCommandAlreadySquare(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "square.png", 16, 16)

	if _, _, err := execute(path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	img, _, err := imgio.NewFileLoader().Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("Expected 16x16 output, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestInvalidArgumentCount(t *testing.T) {
	dir := t.TempDir()
	first := writeTestPNG(t, dir, "a.png", 20, 10)
	second := writeTestPNG(t, dir, "b.png", 10, 20)
	before := [][]byte{readFile(t, first), readFile(t, second)}

	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "two arguments", args: []string{first, second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(tt.args...)
			if !errors.Is(err, cli.ErrInvalidArgumentCount) {
				t.Fatalf("Expected ErrInvalidArgumentCount, got %v", err)
			}
			if code := cli.ExitCode(err); code != cli.ExitUsage {
				t.Errorf("Expected exit code %d, got %d", cli.ExitUsage, code)
			}
			if !strings.Contains(stderr, "I need an image file path as argument") {
				t.Errorf("Expected usage message on stderr, got %q", stderr)
			}
			if strings.Contains(stdout, "Squaring") {
				t.Errorf("Expected no work to start, got %q", stdout)
			}
		})
	}

	if !bytes.Equal(readFile(t, first), before[0]) || !bytes.Equal(readFile(t, second), before[1]) {
		t.Error("Expected input files to be left untouched")
	}
}

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	_, _, err := execute(path)
	if !errors.Is(err, imgio.ErrDecode) {
		t.Fatalf("Expected ErrDecode, got %v", err)
	}
	if code := cli.ExitCode(err); code != cli.ExitFailure {
		t.Errorf("Expected exit code %d, got %d", cli.ExitFailure, code)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file to be created")
	}
}

func TestImageTooSmall(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "tiny.png", 3, 3)
	before := readFile(t, path)

	_, _, err := execute(path)
	if !errors.Is(err, square.ErrSampleOutOfBounds) {
		t.Fatalf("Expected ErrSampleOutOfBounds, got %v", err)
	}
	if code := cli.ExitCode(err); code != cli.ExitFailure {
		t.Errorf("Expected exit code %d, got %d", cli.ExitFailure, code)
	}
	if !bytes.Equal(readFile(t, path), before) {
		t.Error("Expected the file to be left untouched")
	}
}

func TestUnwritableFormat(t *testing.T) {
	dir := t.TempDir()
	// PNG content under a WebP name decodes fine but cannot be written back.
	path := writeTestPNG(t, dir, "picture.webp", 20, 10)
	before := readFile(t, path)

	_, _, err := execute(path)
	if !errors.Is(err, imgio.ErrEncode) {
		t.Fatalf("Expected ErrEncode, got %v", err)
	}
	if !bytes.Equal(readFile(t, path), before) {
		t.Error("Expected the file to be left untouched")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected no leftover temporary files, got %d entries", len(entries))
	}
}

func TestVerboseLogging(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "tall.png", 10, 30)

	_, stderr, err := execute("--verbose", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"image decoded", "canvas composed", "side=30", `background="#0000ff"`, "image written"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected %q in verbose output, got %q", want, stderr)
		}
	}
}

func TestQuietByDefault(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "tall.png", 10, 30)

	_, stderr, err := execute(path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("Expected empty stderr, got %q", stderr)
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute("--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "squarer version ") {
		t.Errorf("Expected version output, got %q", stdout)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitOK},
		{name: "usage", err: cli.ErrInvalidArgumentCount, want: cli.ExitUsage},
		{name: "decode", err: &imgio.DecodeError{Path: "x", Err: os.ErrNotExist}, want: cli.ExitFailure},
		{name: "sample", err: &square.SampleOutOfBoundsError{X: 3, Y: 3, Width: 2, Height: 2}, want: cli.ExitFailure},
		{name: "encode", err: &imgio.EncodeError{Path: "x", Err: os.ErrPermission}, want: cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
