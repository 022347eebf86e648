package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

// CommentService manages review comments and the participants they imply.
type CommentService struct {
	store     Store
	lifecycle *LifecycleService
	logger    zerolog.Logger
}

// NewCommentService shares the lifecycle's per-request lock so comment batches
// serialize with state changes.
func NewCommentService(store Store, lifecycle *LifecycleService, logger zerolog.Logger) *CommentService {
	return &CommentService{
		store:     store,
		lifecycle: lifecycle,
		logger:    logger.With().Str("component", "comments").Logger(),
	}
}

// AddComments stores the non-blank entries of batch on the given patch version
// and records one history event for them. It returns the number stored.
func (s *CommentService) AddComments(ctx context.Context, id int64, author domain.UserID, version int, batch []domain.LocatedText) (int, error) {
	unlock := s.lifecycle.locks.Lock(id)
	defer unlock()

	mr, err := s.lifecycle.load(ctx, id)
	if err != nil {
		return 0, err
	}
	patch, ok := mr.Patches().At(version)
	if !ok {
		return 0, fmt.Errorf("%w: version %d", ErrPatchNotFound, version)
	}

	now := s.lifecycle.now()
	comments := domain.BuildComments(author, patch, batch, now)
	if len(comments) == 0 {
		return 0, nil
	}

	mr.RecordComments(author, len(comments), now)
	mr.BeforeSave(now)
	if err := mr.Validate(); err != nil {
		return 0, err
	}

	if _, err := s.store.AddComments(ctx, mr, comments); err != nil {
		if errors.Is(err, ErrStaleObject) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to add comments: %w", err)
	}

	s.logger.Info().
		Int64("merge_request_id", id).
		Int("version", version).
		Int("count", len(comments)).
		Msg("comments added")

	return len(comments), nil
}

// Comments lists the comments of a merge request in creation order.
func (s *CommentService) Comments(ctx context.Context, id int64) ([]domain.Comment, error) {
	if _, err := s.lifecycle.load(ctx, id); err != nil {
		return nil, err
	}
	comments, err := s.store.Comments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

// HasGeneralComments reports whether any comment of the request is not tied to a line.
func (s *CommentService) HasGeneralComments(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.HasGeneralComments(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check general comments: %w", err)
	}
	return ok, nil
}

// PeopleInvolved returns the comment authors, the reviewer and the author.
func (s *CommentService) PeopleInvolved(ctx context.Context, id int64) ([]domain.UserID, error) {
	mr, err := s.lifecycle.load(ctx, id)
	if err != nil {
		return nil, err
	}
	authors, err := s.store.CommentAuthors(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment authors: %w", err)
	}
	return mr.PeopleInvolved(authors), nil
}
