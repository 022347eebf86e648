package patch

import (
	"context"
	"fmt"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/repository"
)

// Insert stores one patch.
func Insert(ctx context.Context, exec repository.DBTX, mergeRequestID int64, p domain.Patch) error {
	query := `
		INSERT INTO patches (merge_request_id, version, subject, commit_message, description, diff, linter_ok, ci_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := exec.ExecContext(ctx, query,
		mergeRequestID, p.Version, p.Subject, p.CommitMessage, p.Description, p.Diff, p.LinterOK, p.CIStatus, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert patch %d: %w", p.Version, err)
	}
	return nil
}

// ListByMergeRequest returns the patches of a merge request in version order.
func ListByMergeRequest(ctx context.Context, exec repository.DBTX, mergeRequestID int64) ([]domain.Patch, error) {
	query := `
		SELECT merge_request_id, version, subject, commit_message, description, diff, linter_ok, ci_status, created_at
		FROM patches
		WHERE merge_request_id = $1
		ORDER BY version
	`
	var patches []domain.Patch
	if err := exec.SelectContext(ctx, &patches, query, mergeRequestID); err != nil {
		return nil, fmt.Errorf("failed to get patches: %w", err)
	}
	return patches, nil
}
