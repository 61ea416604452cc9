// Package convert runs the conversion of a single image: decode, encode,
// write the new file, then optionally remove the source.
//
// Each step either succeeds or ends the item with a [StageError]; nothing
// is retried. The source is only removed after the output has been
// written, synced and closed, and a failed decode, encode or write never
// leaves an output file behind. A failure to remove the source after a
// successful write is reported as a partial success: the output stays.
package convert
