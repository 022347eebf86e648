package mergerequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/repository"
)

// ErrNoRows is returned by Get for unknown ids and by Update when the id and
// lock version no longer match a row.
var ErrNoRows = sql.ErrNoRows

const columns = `id, author_id, reviewer_id, target_branch, subject, status, lock_version, created_at, updated_at`

// Insert creates the merge request row and returns its id.
func Insert(ctx context.Context, exec repository.DBTX, mr *domain.MergeRequest) (int64, error) {
	query := `
		INSERT INTO merge_requests (author_id, reviewer_id, target_branch, subject, status, lock_version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7)
		RETURNING id
	`
	var id int64
	err := exec.QueryRowxContext(ctx, query,
		mr.AuthorID, mr.ReviewerID, mr.TargetBranch, mr.Subject, mr.Status, mr.CreatedAt, mr.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert merge request: %w", err)
	}
	return id, nil
}

// Update writes the mutable columns if the stored lock version still equals
// mr.LockVersion, and bumps it.
func Update(ctx context.Context, exec repository.DBTX, mr *domain.MergeRequest) error {
	query := `
		UPDATE merge_requests
		SET reviewer_id = $1, target_branch = $2, subject = $3, status = $4,
		    lock_version = lock_version + 1, updated_at = $5
		WHERE id = $6 AND lock_version = $7
	`
	res, err := exec.ExecContext(ctx, query,
		mr.ReviewerID, mr.TargetBranch, mr.Subject, mr.Status, mr.UpdatedAt, mr.ID, mr.LockVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update merge request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNoRows
	}
	return nil
}

// Get retrieves a merge request row without patches and history.
func Get(ctx context.Context, exec repository.DBTX, id int64) (*domain.MergeRequest, error) {
	var mr domain.MergeRequest
	err := exec.GetContext(ctx, &mr, `SELECT `+columns+` FROM merge_requests WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to get merge request: %w", err)
	}
	return &mr, nil
}

// List returns summaries filtered by state, newest first.
func List(ctx context.Context, exec repository.DBTX, state domain.ListState) ([]domain.MergeRequestSummary, error) {
	query := `
		SELECT id, author_id, reviewer_id, target_branch, subject, status, updated_at
		FROM merge_requests
	`
	var args []any
	switch state {
	case domain.ListPending:
		query += ` WHERE status < $1`
		args = append(args, domain.CloseLimit)
	case domain.ListClosed:
		query += ` WHERE status >= $1`
		args = append(args, domain.CloseLimit)
	}
	query += ` ORDER BY updated_at DESC, id DESC`

	summaries := []domain.MergeRequestSummary{}
	if err := exec.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}
	return summaries, nil
}
