// Package naming derives output paths for converted images and guards the
// batch against two items claiming the same path.
//
// Output files always land next to their source:
//
//	no base name:         <dir>/<random-token>.webp
//	base name, 1 file:    <dir>/<base>.webp
//	base name, N files:   <dir>/<base><index+1>.webp
//
// [DeriveOutputPath] never looks at the disk. Files that already exist are
// detected when the converter opens the output exclusively; collisions
// inside a single run (an output equal to a source, or two items mapping
// to one path) are rejected by [Guard].
package naming
