// Package codec adapts the external image decoders and the WebP encoder to
// the conversion pipeline.
//
// Decoding goes through image.Decode (via imaging), so every format with a
// registered decoder is accepted: JPEG, PNG and GIF from the standard library
// plus BMP, TIFF and WebP from golang.org/x/image. Decoded pixels are
// normalized to 8-bit RGB before encoding. Alpha is dropped, not composited:
// a fully transparent pixel keeps whatever color it carried.
//
// Nothing in this package touches the filesystem except [DecodeFile], which
// only reads its input.
package codec
