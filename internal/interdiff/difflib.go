package interdiff

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// LineDiffer renders a unified diff of the two diff texts in process. Its output
// is coarser than interdiff's but needs no external binary.
type LineDiffer struct {
	context int
}

func NewLineDiffer() *LineDiffer {
	return &LineDiffer{context: 3}
}

func (d *LineDiffer) Interdiff(ctx context.Context, oldDiff, newDiff string) (string, error) {
	if trivial(oldDiff, newDiff) {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldDiff),
		B:        difflib.SplitLines(newDiff),
		FromFile: "old",
		ToFile:   "new",
		Context:  d.context,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render diff: %w", err)
	}
	return out, nil
}
