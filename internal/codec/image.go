package codec

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// Sentinel errors wrapped by Decode and Encode failures.
var (
	ErrDecode = errors.New("unsupported or corrupt image")
	ErrEncode = errors.New("webp encoder error")
)

// Extension is the file extension (without dot) of encoded output.
const Extension = "webp"

// MaxDimension is the largest width or height a WebP bitstream can carry.
const MaxDimension = 16383

// Layout describes how pixels are packed in Image.Pix.
type Layout int

const (
	RGB8 Layout = iota // 3 bytes per pixel: R, G, B.
)

// Channels returns the number of bytes per pixel for the layout.
func (l Layout) Channels() int {
	switch l {
	case RGB8:
		return 3
	default:
		return 0
	}
}

func (l Layout) String() string {
	switch l {
	case RGB8:
		return "rgb8"
	default:
		return "unknown"
	}
}

// Image is a decoded raw pixel buffer. Row y starts at Pix[y*Stride].
type Image struct {
	Width  int
	Height int
	Layout Layout
	Stride int
	Pix    []byte
}

// At returns the channel values of the pixel at (x, y).
func (m *Image) At(x, y int) []byte {
	n := m.Layout.Channels()
	off := y*m.Stride + x*n
	return m.Pix[off : off+n]
}

// Normalize converts any color model to RGB8. Straight (non-premultiplied)
// color values are kept and the alpha channel is discarded.
func Normalize(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{
		Width:  w,
		Height: h,
		Layout: RGB8,
		Stride: w * 3,
		Pix:    make([]byte, w*h*3),
	}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		dst := out.Pix[y*out.Stride : (y+1)*out.Stride]
		for x := 0; x < w; x++ {
			copy(dst[x*3:x*3+3], row[x*4:x*4+3])
		}
	}
	return out
}

// rgba expands the buffer to an opaque *image.RGBA for the encoder.
func (m *Image) rgba() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		src := m.Pix[y*m.Stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < m.Width; x++ {
			row[x*4+0] = src[x*3+0]
			row[x*4+1] = src[x*3+1]
			row[x*4+2] = src[x*3+2]
			row[x*4+3] = 0xff
		}
	}
	return dst
}
