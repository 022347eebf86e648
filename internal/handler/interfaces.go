package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/services.go -package=mocks

import (
	"context"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

// LifecycleServiceInterface defines the interface for merge request lifecycle operations.
type LifecycleServiceInterface interface {
	Create(ctx context.Context, in service.CreateInput) (*domain.MergeRequest, error)
	Get(ctx context.Context, id int64) (*domain.MergeRequest, error)
	List(ctx context.Context, state domain.ListState) ([]domain.MergeRequestSummary, error)
	AddPatch(ctx context.Context, id int64, in service.PatchInput) (domain.Patch, error)
	Update(ctx context.Context, id int64, subject, targetBranch string) (*domain.MergeRequest, error)
	Abandon(ctx context.Context, id int64, actor domain.UserID) (*domain.MergeRequest, error)
	Integrate(ctx context.Context, id int64, reviewer domain.UserID) (*domain.MergeRequest, error)
}

// InterdiffServiceInterface defines the interface for diffs between patch versions.
type InterdiffServiceInterface interface {
	DiffBetween(ctx context.Context, id int64, from, to *int) (string, error)
}

// CommentServiceInterface defines the interface for comment operations.
type CommentServiceInterface interface {
	AddComments(ctx context.Context, id int64, author domain.UserID, version int, batch []domain.LocatedText) (int, error)
	Comments(ctx context.Context, id int64) ([]domain.Comment, error)
	HasGeneralComments(ctx context.Context, id int64) (bool, error)
	PeopleInvolved(ctx context.Context, id int64) ([]domain.UserID, error)
}
