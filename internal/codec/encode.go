package codec

import (
	"bytes"
	"fmt"

	"github.com/chai2010/webp"
)

// Encode compresses img as lossy WebP. quality must lie in [1,100]; callers
// validate it once per batch, so an out-of-range value here is an encode
// failure rather than a configuration error.
func Encode(img *Image, quality float32) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrEncode)
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: quality %g out of range [1,100]", ErrEncode, quality)
	}
	if img.Layout != RGB8 {
		return nil, fmt.Errorf("%w: unsupported layout %s", ErrEncode, img.Layout)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrEncode, img.Width, img.Height)
	}
	if img.Width > MaxDimension || img.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds WebP limit of %d", ErrEncode, img.Width, img.Height, MaxDimension)
	}
	if len(img.Pix) < img.Stride*(img.Height-1)+img.Width*3 {
		return nil, fmt.Errorf("%w: pixel buffer too short", ErrEncode)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img.rgba(), &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: encoder produced no data", ErrEncode)
	}
	return buf.Bytes(), nil
}
