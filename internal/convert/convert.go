package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/backmassage/webpix/internal/codec"
)

// Options are the per-batch settings applied to every item.
type Options struct {
	KeepOriginal bool
	Quality      float32
	// Force truncates an existing output instead of failing the item.
	// If the write then fails, that output is removed, not restored.
	Force bool
}

// Codec is the decode/encode capability the converter depends on.
type Codec interface {
	DecodeFile(path string) (*codec.Image, error)
	Encode(img *codec.Image, quality float32) ([]byte, error)
}

type webpCodec struct{}

func (webpCodec) DecodeFile(path string) (*codec.Image, error) { return codec.DecodeFile(path) }
func (webpCodec) Encode(img *codec.Image, q float32) ([]byte, error) {
	return codec.Encode(img, q)
}

// Converter converts single files. The zero value is not usable; see [New].
type Converter struct {
	codec  Codec
	remove func(string) error
}

// New returns a converter backed by the WebP codec.
func New() *Converter {
	return &Converter{codec: webpCodec{}, remove: os.Remove}
}

// NewWithCodec returns a converter using c for decoding and encoding.
func NewWithCodec(c Codec) *Converter {
	return &Converter{codec: c, remove: os.Remove}
}

// Convert converts source into a new file at output using the default
// converter.
func Convert(source, output string, opts Options) Outcome {
	return New().Convert(source, output, opts)
}

// Convert decodes source, encodes it at opts.Quality, writes output and,
// unless opts.KeepOriginal, removes source.
func (c *Converter) Convert(source, output string, opts Options) Outcome {
	out := Outcome{Source: source}
	if fi, err := os.Stat(source); err == nil {
		out.InputBytes = fi.Size()
	}

	img, err := c.codec.DecodeFile(source)
	if err != nil {
		out.Err = &StageError{Stage: StageDecode, Path: source, Err: err}
		return out
	}

	payload, err := c.codec.Encode(img, opts.Quality)
	if err != nil {
		out.Err = &StageError{Stage: StageEncode, Path: source, Err: err}
		return out
	}

	if err := writeFile(output, payload, opts.Force); err != nil {
		out.Err = &StageError{Stage: StageWrite, Path: output, Err: err}
		return out
	}
	out.Output = output
	out.OutputBytes = int64(len(payload))

	if !opts.KeepOriginal {
		if err := c.remove(source); err != nil {
			out.Err = &StageError{Stage: StageDelete, Path: source, Err: err}
		}
	}
	return out
}

// writeFile creates path and writes data in full. Without force an existing
// file fails with ErrOutputExists. On any error after creation the partial
// file is removed.
func writeFile(path string, data []byte, force bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE
	if force {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Plan checks that source can be decoded and that output is free, without
// writing anything. It is used for dry runs.
func Plan(source, output string, opts Options) Outcome {
	out := Outcome{Source: source}
	f, err := os.Open(source)
	if err != nil {
		out.Err = &StageError{Stage: StageDecode, Path: source, Err: fmt.Errorf("%w: %w", codec.ErrDecode, err)}
		return out
	}
	defer f.Close()
	if fi, err := f.Stat(); err == nil {
		out.InputBytes = fi.Size()
	}
	if _, _, err := codec.DecodeConfig(f); err != nil {
		out.Err = &StageError{Stage: StageDecode, Path: source, Err: err}
		return out
	}
	if !opts.Force {
		if _, err := os.Stat(output); err == nil {
			out.Err = &StageError{Stage: StageWrite, Path: output, Err: fmt.Errorf("%w: %s", ErrOutputExists, output)}
			return out
		}
	}
	out.Output = output
	return out
}
