package service

import (
	"context"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

// Store persists merge request aggregates and their comments.
//
// Save inserts a new request or updates an existing one together with its
// pending patches and history events, in one transaction, and then calls
// MarkPersisted on the aggregate. An update whose lock version no longer
// matches fails with ErrStaleObject. Get returns ErrMergeRequestNotFound for
// unknown ids. AddComments inserts the whole batch together with the pending
// history events of mr, under the same lock version check as Save, or nothing.
type Store interface {
	Save(ctx context.Context, mr *domain.MergeRequest) error
	Get(ctx context.Context, id int64) (*domain.MergeRequest, error)
	List(ctx context.Context, state domain.ListState) ([]domain.MergeRequestSummary, error)

	AddComments(ctx context.Context, mr *domain.MergeRequest, comments []domain.Comment) ([]domain.Comment, error)
	Comments(ctx context.Context, mergeRequestID int64) ([]domain.Comment, error)
	HasGeneralComments(ctx context.Context, mergeRequestID int64) (bool, error)
	CommentAuthors(ctx context.Context, mergeRequestID int64) ([]domain.UserID, error)
}
