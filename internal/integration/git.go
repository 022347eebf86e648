package integration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

const (
	gitBinary     = "git"
	scratchBranch = "mr-integration"
	defaultRemote = "origin"
)

// GitBridge integrates patches through a local working copy of the target
// repository. Pushes are serialized because they share the working copy.
type GitBridge struct {
	workdir string
	remote  string
	runner  Runner
	remover BranchRemover
	logger  zerolog.Logger

	mu sync.Mutex
}

// NewGitBridge returns a bridge operating on the working copy at workdir.
// A nil remover makes RemoveCIBranch a no-op.
func NewGitBridge(workdir, remote string, runner Runner, remover BranchRemover, logger zerolog.Logger) *GitBridge {
	if remote == "" {
		remote = defaultRemote
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &GitBridge{
		workdir: workdir,
		remote:  remote,
		runner:  runner,
		remover: remover,
		logger:  logger.With().Str("component", "git_bridge").Logger(),
	}
}

func (b *GitBridge) Push(ctx context.Context, targetBranch string, patch domain.Patch) (<-chan PushResult, error) {
	if strings.TrimSpace(patch.Diff) == "" {
		return nil, fmt.Errorf("patch %d of merge request %d has no diff", patch.Version, patch.MergeRequestID)
	}
	if _, err := os.Stat(b.workdir); err != nil {
		return nil, fmt.Errorf("failed to access working copy: %w", err)
	}

	ch := make(chan PushResult, 1)
	go func() {
		defer close(ch)
		err := b.push(ctx, targetBranch, patch)
		if err != nil {
			b.logger.Warn().Err(err).
				Int64("merge_request_id", patch.MergeRequestID).
				Int("version", patch.Version).
				Str("target_branch", targetBranch).
				Msg("push failed")
		}
		ch <- PushResult{Success: err == nil, Err: err}
	}()
	return ch, nil
}

func (b *GitBridge) push(ctx context.Context, targetBranch string, patch domain.Patch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.git(ctx, nil, "fetch", b.remote, targetBranch); err != nil {
		return err
	}
	if err := b.git(ctx, nil, "checkout", "-B", scratchBranch, "FETCH_HEAD"); err != nil {
		return err
	}
	if err := b.apply(ctx, patch); err != nil {
		return err
	}
	return b.git(ctx, nil, "push", b.remote, "HEAD:refs/heads/"+targetBranch)
}

func (b *GitBridge) apply(ctx context.Context, patch domain.Patch) error {
	if isMailbox(patch.Diff) {
		err := b.git(ctx, strings.NewReader(patch.Diff), "am", "--3way")
		if err != nil {
			if abortErr := b.git(ctx, nil, "am", "--abort"); abortErr != nil {
				err = errors.Join(err, abortErr)
			}
		}
		return err
	}

	if err := b.git(ctx, strings.NewReader(patch.Diff), "apply", "--index"); err != nil {
		return err
	}
	return b.git(ctx, nil, "commit", "-m", commitMessage(patch))
}

func (b *GitBridge) git(ctx context.Context, stdin io.Reader, args ...string) error {
	_, err := b.runner.Run(ctx, b.workdir, stdin, gitBinary, args...)
	return err
}

func (b *GitBridge) RemoveCIBranch(ctx context.Context, patch domain.Patch) error {
	if b.remover == nil {
		return nil
	}
	if err := b.remover.RemoveBranch(ctx, patch.CIBranch()); err != nil {
		return fmt.Errorf("failed to remove CI branch %s: %w", patch.CIBranch(), err)
	}
	return nil
}

// GitBranchRemover deletes branches with git push --delete.
type GitBranchRemover struct {
	workdir string
	remote  string
	runner  Runner
}

func NewGitBranchRemover(workdir, remote string, runner Runner) *GitBranchRemover {
	if remote == "" {
		remote = defaultRemote
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &GitBranchRemover{workdir: workdir, remote: remote, runner: runner}
}

func (r *GitBranchRemover) RemoveBranch(ctx context.Context, branch string) error {
	_, err := r.runner.Run(ctx, r.workdir, nil, gitBinary, "push", r.remote, "--delete", branch)
	return err
}

func isMailbox(diff string) bool {
	return strings.HasPrefix(diff, "From ") || strings.HasPrefix(diff, "From:")
}

func commitMessage(patch domain.Patch) string {
	subject := patch.Subject
	if subject == "" {
		subject = patch.Label()
	}
	if patch.CommitMessage == "" {
		return subject
	}
	return subject + "\n\n" + patch.CommitMessage
}
