// Package memory is an in-process merge request store for development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

// Store keeps deep copies of saved aggregates. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	requests  map[int64]*domain.MergeRequest
	comments  []domain.Comment
	nextID    int64
	eventID   int64
	commentID int64
}

var _ service.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{requests: make(map[int64]*domain.MergeRequest)}
}

func (s *Store) Save(_ context.Context, mr *domain.MergeRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := mr.ID
	if mr.Persisted() {
		if err := s.checkVersion(mr); err != nil {
			return err
		}
	} else {
		s.nextID++
		id = s.nextID
	}

	s.commit(id, mr)
	return nil
}

func (s *Store) checkVersion(mr *domain.MergeRequest) error {
	stored, ok := s.requests[mr.ID]
	if !ok || stored.LockVersion != mr.LockVersion {
		return fmt.Errorf("%w: id %d, lock version %d", service.ErrStaleObject, mr.ID, mr.LockVersion)
	}
	return nil
}

// commit assigns event ids, marks mr persisted and keeps a copy. Callers hold mu.
func (s *Store) commit(id int64, mr *domain.MergeRequest) {
	pending := mr.History().Pending()
	eventIDs := make([]int64, len(pending))
	for i := range pending {
		s.eventID++
		eventIDs[i] = s.eventID
	}

	mr.MarkPersisted(id, eventIDs)
	s.requests[id] = mr.Clone()
}

func (s *Store) Get(_ context.Context, id int64) (*domain.MergeRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mr, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", service.ErrMergeRequestNotFound, id)
	}
	return mr.Clone(), nil
}

func (s *Store) List(_ context.Context, state domain.ListState) ([]domain.MergeRequestSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := []domain.MergeRequestSummary{}
	for _, mr := range s.requests {
		if state.Matches(mr.Status) {
			summaries = append(summaries, mr.Summary())
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].UpdatedAt.Equal(summaries[j].UpdatedAt) {
			return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
		}
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

func (s *Store) AddComments(_ context.Context, mr *domain.MergeRequest, comments []domain.Comment) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[mr.ID]; !ok {
		return nil, fmt.Errorf("%w: id %d", service.ErrMergeRequestNotFound, mr.ID)
	}
	if err := s.checkVersion(mr); err != nil {
		return nil, err
	}
	for _, c := range comments {
		if c.MergeRequestID != mr.ID {
			return nil, fmt.Errorf("%w: id %d", service.ErrMergeRequestNotFound, c.MergeRequestID)
		}
		if _, ok := mr.Patches().At(c.PatchVersion); !ok {
			return nil, fmt.Errorf("%w: version %d", service.ErrPatchNotFound, c.PatchVersion)
		}
	}

	stored := make([]domain.Comment, len(comments))
	for i, c := range comments {
		s.commentID++
		c.ID = s.commentID
		stored[i] = c
	}
	s.comments = append(s.comments, stored...)
	s.commit(mr.ID, mr)
	return stored, nil
}

func (s *Store) Comments(_ context.Context, mergeRequestID int64) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Comment{}
	for _, c := range s.comments {
		if c.MergeRequestID == mergeRequestID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) HasGeneralComments(_ context.Context, mergeRequestID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.comments {
		if c.MergeRequestID == mergeRequestID && c.IsGeneral() {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CommentAuthors(_ context.Context, mergeRequestID int64) ([]domain.UserID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[domain.UserID]struct{})
	var authors []domain.UserID
	for _, c := range s.comments {
		if c.MergeRequestID != mergeRequestID {
			continue
		}
		if _, ok := seen[c.AuthorID]; ok {
			continue
		}
		seen[c.AuthorID] = struct{}{}
		authors = append(authors, c.AuthorID)
	}
	return authors, nil
}
