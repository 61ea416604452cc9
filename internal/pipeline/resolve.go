package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/backmassage/webpix/internal/config"
)

// Skipped is an argument that did not become a batch item.
type Skipped struct {
	Arg    string
	Reason string
}

// Resolve expands the positional arguments into the ordered input list.
// An argument that exists on disk is taken literally, even when its name
// contains glob metacharacters. Otherwise arguments with metacharacters
// are expanded (for shells that pass patterns through unexpanded) and the
// rest are kept as given, so that missing files surface as per-item
// failures. Directories and repeated paths are returned in skipped, in
// argument order.
func Resolve(args []string) (files []string, skipped []Skipped, err error) {
	var candidates []string
	for _, arg := range args {
		fi, statErr := os.Stat(arg)
		switch {
		case statErr == nil && fi.IsDir():
			skipped = append(skipped, Skipped{Arg: arg, Reason: "is a directory"})
		case statErr == nil || !hasMeta(arg):
			candidates = append(candidates, arg)
		default:
			matches, err := filepath.Glob(arg)
			if err != nil {
				return nil, skipped, &config.ConfigError{Field: "files", Msg: "invalid pattern " + arg, Err: err}
			}
			// Directories matched by a pattern are not worth reporting.
			for _, m := range matches {
				if fi, err := os.Stat(m); err == nil && !fi.IsDir() {
					candidates = append(candidates, m)
				}
			}
		}
	}

	seen := make(map[string]bool, len(candidates))
	for _, f := range lo.Map(candidates, func(f string, _ int) string { return filepath.Clean(f) }) {
		if seen[f] {
			skipped = append(skipped, Skipped{Arg: f, Reason: "listed more than once"})
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, skipped, &config.ConfigError{Field: "files", Msg: "no input files"}
	}
	return files, skipped, nil
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}
