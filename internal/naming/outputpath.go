package naming

import (
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// TokenFunc returns a name that is unique with overwhelming probability.
type TokenFunc func() string

// NewToken returns a random (version 4) UUID string.
func NewToken() string {
	return uuid.NewString()
}

// DeriveOutputPath builds the output path for the item at index (0-based)
// in a batch of batchSize items. ext is the target extension without dot.
// When base is empty, token supplies the file stem; a nil token uses
// [NewToken]. For a fixed token function the result depends only on the
// arguments.
func DeriveOutputPath(source, base string, index, batchSize int, ext string, token TokenFunc) string {
	dir := filepath.Dir(source)

	var stem string
	switch {
	case base == "":
		if token == nil {
			token = NewToken
		}
		stem = token()
	case batchSize == 1:
		stem = base
	default:
		stem = base + strconv.Itoa(index+1)
	}
	return filepath.Join(dir, stem+"."+ext)
}
