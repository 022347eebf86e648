// Package postgres implements the merge request store on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/repository"
	"github.com/mishasvintus/merge_request_service/internal/repository/comment"
	"github.com/mishasvintus/merge_request_service/internal/repository/history"
	"github.com/mishasvintus/merge_request_service/internal/repository/mergerequest"
	"github.com/mishasvintus/merge_request_service/internal/repository/patch"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

// Store persists merge requests in PostgreSQL.
type Store struct {
	db *sqlx.DB
}

var _ service.Store = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, mr *domain.MergeRequest) error {
	var (
		id       int64
		eventIDs []int64
	)

	err := repository.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		id, eventIDs, err = save(ctx, tx, mr)
		return err
	})
	if err != nil {
		return writeError(err, mr)
	}

	mr.MarkPersisted(id, eventIDs)
	return nil
}

// save writes the request row with its pending patches and history events.
func save(ctx context.Context, tx *sqlx.Tx, mr *domain.MergeRequest) (int64, []int64, error) {
	id := mr.ID
	if mr.Persisted() {
		if err := mergerequest.Update(ctx, tx, mr); err != nil {
			if errors.Is(err, mergerequest.ErrNoRows) {
				return 0, nil, fmt.Errorf("%w: id %d, lock version %d", service.ErrStaleObject, mr.ID, mr.LockVersion)
			}
			return 0, nil, err
		}
	} else {
		newID, err := mergerequest.Insert(ctx, tx, mr)
		if err != nil {
			return 0, nil, err
		}
		id = newID
	}

	for _, p := range mr.Patches().Pending() {
		if err := patch.Insert(ctx, tx, id, p); err != nil {
			return 0, nil, err
		}
	}

	var eventIDs []int64
	for _, e := range mr.History().Pending() {
		eventID, err := history.Insert(ctx, tx, id, e)
		if err != nil {
			return 0, nil, err
		}
		eventIDs = append(eventIDs, eventID)
	}
	return id, eventIDs, nil
}

// writeError maps conflicts with a concurrent writer to ErrStaleObject. A
// duplicate patch version means another writer appended the same version first.
func writeError(err error, mr *domain.MergeRequest) error {
	if repository.IsSerializationFailure(err) || repository.IsUniqueViolation(err) {
		return fmt.Errorf("%w: id %d, lock version %d: %v", service.ErrStaleObject, mr.ID, mr.LockVersion, err)
	}
	return err
}

func (s *Store) Get(ctx context.Context, id int64) (*domain.MergeRequest, error) {
	mr, err := mergerequest.Get(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, mergerequest.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", service.ErrMergeRequestNotFound, id)
		}
		return nil, err
	}

	patches, err := patch.ListByMergeRequest(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	events, err := history.ListByMergeRequest(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	mr.Restore(patches, events)
	return mr, nil
}

func (s *Store) List(ctx context.Context, state domain.ListState) ([]domain.MergeRequestSummary, error) {
	return mergerequest.List(ctx, s.db, state)
}

func (s *Store) AddComments(ctx context.Context, mr *domain.MergeRequest, comments []domain.Comment) ([]domain.Comment, error) {
	stored := make([]domain.Comment, len(comments))
	copy(stored, comments)

	var eventIDs []int64
	err := repository.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for i := range stored {
			if err := comment.Insert(ctx, tx, &stored[i]); err != nil {
				if repository.IsForeignKeyViolation(err) {
					return fmt.Errorf("%w: version %d", service.ErrPatchNotFound, stored[i].PatchVersion)
				}
				return err
			}
		}

		var err error
		_, eventIDs, err = save(ctx, tx, mr)
		return err
	})
	if err != nil {
		return nil, writeError(err, mr)
	}

	mr.MarkPersisted(mr.ID, eventIDs)
	return stored, nil
}

func (s *Store) Comments(ctx context.Context, mergeRequestID int64) ([]domain.Comment, error) {
	return comment.ListByMergeRequest(ctx, s.db, mergeRequestID)
}

func (s *Store) HasGeneralComments(ctx context.Context, mergeRequestID int64) (bool, error) {
	return comment.HasGeneral(ctx, s.db, mergeRequestID)
}

func (s *Store) CommentAuthors(ctx context.Context, mergeRequestID int64) ([]domain.UserID, error) {
	return comment.Authors(ctx, s.db, mergeRequestID)
}
