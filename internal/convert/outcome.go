package convert

// Outcome is the result of converting one source file.
type Outcome struct {
	Source string
	// Output is set once the output file was written, including when the
	// source could not be removed afterwards.
	Output string
	Err    error

	InputBytes  int64
	OutputBytes int64
}

// OK reports whether the item converted and cleaned up without error.
func (o Outcome) OK() bool { return o.Err == nil }

// Partial reports whether the output was written but removing the source
// failed.
func (o Outcome) Partial() bool {
	return o.Err != nil && o.Output != "" && StageOf(o.Err) == StageDelete
}

// Failed reports whether the item produced no output.
func (o Outcome) Failed() bool { return o.Err != nil && !o.Partial() }
