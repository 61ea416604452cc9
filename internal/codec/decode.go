package codec

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sort"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// knownFormats lists the decoders imported above; package image has no API
// to enumerate registrations.
var knownFormats = []string{"bmp", "gif", "jpeg", "png", "tiff", "webp"}

// Decode reads an image in any registered format and normalizes it to RGB8.
// EXIF orientation is applied; all other metadata is dropped.
func Decode(r io.Reader) (*Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}
	return Normalize(img), nil
}

// DecodeFile opens path and decodes it. A missing or unreadable file is a
// decode failure; the returned error also matches the underlying fs error.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()
	return Decode(f)
}

// DecodeConfig reports the format name and dimensions without decoding pixels.
func DecodeConfig(r io.Reader) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cfg, format, nil
}

// Formats returns the sorted names of the input formats this build accepts.
func Formats() []string {
	out := append([]string(nil), knownFormats...)
	sort.Strings(out)
	return out
}
