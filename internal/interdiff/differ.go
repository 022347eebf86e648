// Package interdiff computes the diff between two revisions of a patch.
package interdiff

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Backend names accepted by New.
const (
	BackendExec = "exec"
	BackendLine = "line"
)

// Differ produces the diff of two diffs. Implementations return an empty string
// when either input is empty or both inputs are identical.
type Differ interface {
	Interdiff(ctx context.Context, oldDiff, newDiff string) (string, error)
}

// New builds the differ selected by backend.
func New(backend, binary string, maxConcurrent int64, logger zerolog.Logger) (Differ, error) {
	switch backend {
	case BackendExec, "":
		return NewExecDiffer(binary, maxConcurrent, logger), nil
	case BackendLine:
		return NewLineDiffer(), nil
	default:
		return nil, fmt.Errorf("unknown interdiff backend %q", backend)
	}
}

func trivial(oldDiff, newDiff string) bool {
	return oldDiff == "" || newDiff == "" || oldDiff == newDiff
}
