package convert

import (
	"errors"
	"fmt"
)

// ErrOutputExists is returned when the output path is already taken on disk
// and overwriting was not requested.
var ErrOutputExists = errors.New("output file already exists")

// Stage names the step of a conversion that failed.
type Stage string

const (
	StageDecode Stage = "decode"
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
	StageDelete Stage = "delete"
)

// StageError ties a failure to the step and file it occurred on.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	switch e.Stage {
	case StageDelete:
		return fmt.Sprintf("could not remove %s: %v", e.Path, e.Err)
	case StageWrite:
		return fmt.Sprintf("write %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
}

func (e *StageError) Unwrap() error { return e.Err }

// StageOf returns the stage of the first StageError in err's chain, or ""
// when there is none.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
