package comment

import (
	"context"
	"fmt"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/repository"
)

// Insert stores a comment and fills in its id.
func Insert(ctx context.Context, exec repository.DBTX, c *domain.Comment) error {
	query := `
		INSERT INTO comments (merge_request_id, patch_version, author_id, content, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := exec.GetContext(ctx, &c.ID, query,
		c.MergeRequestID, c.PatchVersion, c.AuthorID, c.Content, c.Location, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// ListByMergeRequest returns the comments on every patch of a merge request.
func ListByMergeRequest(ctx context.Context, exec repository.DBTX, mergeRequestID int64) ([]domain.Comment, error) {
	query := `
		SELECT id, merge_request_id, patch_version, author_id, content, location, created_at
		FROM comments
		WHERE merge_request_id = $1
		ORDER BY id
	`
	comments := []domain.Comment{}
	if err := exec.SelectContext(ctx, &comments, query, mergeRequestID); err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

// HasGeneral reports whether a merge request has a comment at the general location.
func HasGeneral(ctx context.Context, exec repository.DBTX, mergeRequestID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE merge_request_id = $1 AND location = $2)`
	var exists bool
	if err := exec.GetContext(ctx, &exists, query, mergeRequestID, domain.GeneralLocation); err != nil {
		return false, fmt.Errorf("failed to check general comments: %w", err)
	}
	return exists, nil
}

// Authors returns the distinct comment authors in order of first comment.
func Authors(ctx context.Context, exec repository.DBTX, mergeRequestID int64) ([]domain.UserID, error) {
	query := `
		SELECT author_id
		FROM comments
		WHERE merge_request_id = $1
		GROUP BY author_id
		ORDER BY MIN(id)
	`
	var authors []domain.UserID
	if err := exec.SelectContext(ctx, &authors, query, mergeRequestID); err != nil {
		return nil, fmt.Errorf("failed to get comment authors: %w", err)
	}
	return authors, nil
}
