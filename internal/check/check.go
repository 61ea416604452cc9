// Package check provides codec diagnostics (--check mode) and the
// pre-dispatch encoder check (CheckDeps).
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/backmassage/webpix/internal/codec"
)

// ErrEncoderUnusable is returned by CheckDeps when a test encode fails.
var ErrEncoderUnusable = errors.New("webp encoder unusable")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck lists the accepted input formats and round-trips a test image
// through the decoder and the WebP encoder. It reports whether everything
// passed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")
	log.Info("Input formats: %s", strings.Join(codec.Formats(), ", "))
	log.Info("Output format: %s", codec.Extension)

	ok := checkDecode(log)
	if err := CheckDeps(); err != nil {
		log.Error("%v", err)
		ok = false
	} else {
		log.Success("WebP encoder: OK")
	}
	return ok
}

// CheckDeps encodes a small test image and fails if the encoder cannot
// produce output. Run before any item is dispatched.
func CheckDeps() error {
	data, err := codec.Encode(codec.Normalize(testImage()), 50)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoderUnusable, err)
	}
	if _, err := codec.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: output not readable: %v", ErrEncoderUnusable, err)
	}
	return nil
}

// checkDecode verifies the decode path on an in-memory PNG with alpha.
func checkDecode(log Logger) bool {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		log.Error("Cannot build test image: %v", err)
		return false
	}
	img, err := codec.Decode(&buf)
	if err != nil {
		log.Error("Decoder: %v", err)
		return false
	}
	log.Success("Decoder: OK (%dx%d, %s)", img.Width, img.Height, img.Layout)
	return true
}

func testImage() image.Image {
	return imaging.New(8, 8, color.NRGBA{R: 200, G: 60, B: 30, A: 128})
}
