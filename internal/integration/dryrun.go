package integration

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

// DryRunBridge reports every push as successful without touching a repository.
type DryRunBridge struct {
	logger zerolog.Logger
}

func NewDryRunBridge(logger zerolog.Logger) *DryRunBridge {
	return &DryRunBridge{logger: logger.With().Str("component", "dry_run_bridge").Logger()}
}

func (b *DryRunBridge) Push(_ context.Context, targetBranch string, patch domain.Patch) (<-chan PushResult, error) {
	b.logger.Info().
		Int64("merge_request_id", patch.MergeRequestID).
		Int("version", patch.Version).
		Str("target_branch", targetBranch).
		Msg("dry run push")
	return resolved(PushResult{Success: true}), nil
}

func (b *DryRunBridge) RemoveCIBranch(_ context.Context, patch domain.Patch) error {
	b.logger.Info().Str("branch", patch.CIBranch()).Msg("dry run CI branch removal")
	return nil
}
