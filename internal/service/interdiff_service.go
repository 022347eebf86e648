package service

import (
	"context"
	"fmt"

	"github.com/mishasvintus/merge_request_service/internal/interdiff"
)

// InterdiffService computes diffs between patch versions of a merge request.
type InterdiffService struct {
	store  Store
	differ interdiff.Differ
}

func NewInterdiffService(store Store, differ interdiff.Differ) *InterdiffService {
	return &InterdiffService{store: store, differ: differ}
}

// DiffBetween returns the diff from version from to version to. A nil to means
// the latest patch; a nil or zero from returns patch to's own diff.
func (s *InterdiffService) DiffBetween(ctx context.Context, id int64, from, to *int) (string, error) {
	mr, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}

	patches := mr.Patches()
	toVersion := patches.Len()
	if to != nil {
		toVersion = *to
	}
	fromVersion := 0
	if from != nil {
		fromVersion = *from
	}

	if fromVersion < 0 || fromVersion >= toVersion || toVersion > patches.Len() {
		return "", fmt.Errorf("%w: from %d to %d", ErrDiffRangeNotFound, fromVersion, toVersion)
	}

	newPatch, _ := patches.At(toVersion)
	if fromVersion == 0 {
		return newPatch.Diff, nil
	}
	oldPatch, _ := patches.At(fromVersion)

	out, err := s.differ.Interdiff(ctx,
		interdiff.PruneGitHeaders(oldPatch.Diff),
		interdiff.PruneGitHeaders(newPatch.Diff))
	if err != nil {
		return "", fmt.Errorf("failed to diff versions %d and %d: %w", fromVersion, toVersion, err)
	}
	return out, nil
}
