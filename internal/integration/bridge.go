// Package integration pushes accepted patches to the target repository and
// cleans up their CI branches.
package integration

//go:generate mockgen -source=bridge.go -destination=mocks/bridge.go -package=mocks

import (
	"context"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

// Integration modes accepted by the configuration.
const (
	ModeDryRun = "dry"
	ModeGit    = "git"
)

// PushResult is the outcome of one push. Err carries the failure detail for logs.
type PushResult struct {
	Success bool
	Err     error
}

// Bridge talks to the version-control side of the workflow.
type Bridge interface {
	// Push integrates patch into targetBranch. The returned channel receives
	// exactly one result and is then closed. An error means the push was not
	// started.
	Push(ctx context.Context, targetBranch string, patch domain.Patch) (<-chan PushResult, error)
	// RemoveCIBranch deletes the branch CI used for patch.
	RemoveCIBranch(ctx context.Context, patch domain.Patch) error
}

// BranchRemover deletes a remote branch by name.
type BranchRemover interface {
	RemoveBranch(ctx context.Context, branch string) error
}

func resolved(result PushResult) <-chan PushResult {
	ch := make(chan PushResult, 1)
	ch <- result
	close(ch)
	return ch
}
