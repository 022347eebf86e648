package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/integration"
)

// PatchInput is an uploaded revision. Subject and CommitMessage are taken from
// Raw when it is a format-patch text and they are left empty.
type PatchInput struct {
	Raw           string
	Subject       string
	CommitMessage string
	Description   string
	LinterOK      bool
	CIEnabled     bool
}

// CreateInput describes a new merge request and its first patch.
type CreateInput struct {
	AuthorID     domain.UserID
	TargetBranch string
	Subject      string
	Patch        PatchInput
}

// LifecycleService drives merge requests through their states.
type LifecycleService struct {
	store  Store
	bridge integration.Bridge
	locks  *keyedMutex
	logger zerolog.Logger
	now    func() time.Time

	pushes sync.WaitGroup
}

// NewLifecycleService creates a new lifecycle service.
func NewLifecycleService(store Store, bridge integration.Bridge, logger zerolog.Logger) *LifecycleService {
	return &LifecycleService{
		store:  store,
		bridge: bridge,
		locks:  newKeyedMutex(),
		logger: logger.With().Str("component", "lifecycle").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new open merge request with its first patch.
func (s *LifecycleService) Create(ctx context.Context, in CreateInput) (*domain.MergeRequest, error) {
	src, err := diffSource(in.Patch)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = src.Subject
	}

	now := s.now()
	mr := domain.NewMergeRequest(in.AuthorID, in.TargetBranch, subject, now)
	mr.AddPatch(src, in.Patch.LinterOK, in.Patch.CIEnabled, in.Patch.Description, now)

	if err := s.save(ctx, mr); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("merge_request_id", mr.ID).
		Str("author_id", string(mr.AuthorID)).
		Str("target_branch", mr.TargetBranch).
		Msg("merge request created")

	return mr, nil
}

// Get returns the merge request with its patches and history.
func (s *LifecycleService) Get(ctx context.Context, id int64) (*domain.MergeRequest, error) {
	return s.load(ctx, id)
}

// List returns summaries of the merge requests in state.
func (s *LifecycleService) List(ctx context.Context, state domain.ListState) ([]domain.MergeRequestSummary, error) {
	summaries, err := s.store.List(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}
	return summaries, nil
}

// AddPatch appends a new revision. It fails with ErrCannotUpdate while the
// request is integrating or accepted.
func (s *LifecycleService) AddPatch(ctx context.Context, id int64, in PatchInput) (domain.Patch, error) {
	src, err := diffSource(in)
	if err != nil {
		return domain.Patch{}, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	mr, err := s.load(ctx, id)
	if err != nil {
		return domain.Patch{}, err
	}
	if !mr.CanUpdate() {
		return domain.Patch{}, fmt.Errorf("%w: status is %s", ErrCannotUpdate, mr.Status)
	}

	patch := mr.AddPatch(src, in.LinterOK, in.CIEnabled, in.Description, s.now())
	if err := s.save(ctx, mr); err != nil {
		return domain.Patch{}, err
	}

	s.logger.Info().Int64("merge_request_id", id).Int("version", patch.Version).Msg("patch added")

	return patch, nil
}

// Update edits the subject and target branch. Empty values keep the current ones.
func (s *LifecycleService) Update(ctx context.Context, id int64, subject, targetBranch string) (*domain.MergeRequest, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	mr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !mr.CanUpdate() {
		return nil, fmt.Errorf("%w: status is %s", ErrCannotUpdate, mr.Status)
	}

	mr.Update(strings.TrimSpace(subject), strings.TrimSpace(targetBranch))
	if err := s.save(ctx, mr); err != nil {
		return nil, err
	}

	return mr, nil
}

// Abandon closes the request from any status and removes the CI branch of its
// current patch.
func (s *LifecycleService) Abandon(ctx context.Context, id int64, actor domain.UserID) (*domain.MergeRequest, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	mr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	mr.Abandon(actor, s.now())
	if err := s.save(ctx, mr); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("merge_request_id", id).Str("actor", string(actor)).Msg("merge request abandoned")

	if patch, ok := mr.CurrentPatch(); ok {
		if err := s.bridge.RemoveCIBranch(ctx, patch); err != nil {
			return mr, fmt.Errorf("failed to remove CI branch: %w", err)
		}
	}

	return mr, nil
}

// Integrate accepts the request on behalf of reviewer and starts pushing its
// current patch. It returns once the integrating status is persisted; the push
// outcome is applied later. Accepted, abandoned and integrating requests are
// returned unchanged.
func (s *LifecycleService) Integrate(ctx context.Context, id int64, reviewer domain.UserID) (*domain.MergeRequest, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	mr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, ok := mr.CurrentPatch()
	if !ok {
		return nil, ErrNoCurrentPatch
	}

	if !mr.BeginIntegration(reviewer, s.now()) {
		return mr, nil
	}
	if err := s.save(ctx, mr); err != nil {
		return nil, err
	}

	// The push outlives the request that started it.
	results, err := s.bridge.Push(context.WithoutCancel(ctx), mr.TargetBranch, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to start push: %w", err)
	}

	s.logger.Info().
		Int64("merge_request_id", id).
		Int("version", patch.Version).
		Str("reviewer_id", string(reviewer)).
		Msg("integration started")

	s.pushes.Add(1)
	go s.awaitPush(id, results)

	return mr, nil
}

// Wait blocks until every started push has had its outcome applied.
func (s *LifecycleService) Wait() {
	s.pushes.Wait()
}

func (s *LifecycleService) awaitPush(id int64, results <-chan integration.PushResult) {
	defer s.pushes.Done()

	result, ok := <-results
	if !ok {
		result = integration.PushResult{Err: errors.New("push finished without a result")}
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	ctx := context.Background()
	log := s.logger.With().Int64("merge_request_id", id).Bool("success", result.Success).Logger()

	mr, err := s.load(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load merge request for push result")
		return
	}

	if !mr.CompleteIntegration(result.Success, s.now()) {
		log.Info().Str("status", mr.Status.String()).Msg("push result ignored")
		return
	}
	if err := s.save(ctx, mr); err != nil {
		log.Error().Err(err).Msg("failed to apply push result")
		return
	}

	event := log.Info()
	if result.Err != nil {
		event = log.Warn().Err(result.Err)
	}
	event.Str("status", mr.Status.String()).Msg("push result applied")
}

func (s *LifecycleService) load(ctx context.Context, id int64) (*domain.MergeRequest, error) {
	mr, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get merge request: %w", err)
	}
	return mr, nil
}

// save is the single persistence path: before-save hook, validation, store.
func (s *LifecycleService) save(ctx context.Context, mr *domain.MergeRequest) error {
	return saveMergeRequest(ctx, s.store, mr, s.now())
}

func saveMergeRequest(ctx context.Context, store Store, mr *domain.MergeRequest, now time.Time) error {
	mr.BeforeSave(now)
	if err := mr.Validate(); err != nil {
		return err
	}
	if err := store.Save(ctx, mr); err != nil {
		if errors.Is(err, ErrStaleObject) {
			return err
		}
		return fmt.Errorf("failed to save merge request: %w", err)
	}
	return nil
}

func diffSource(in PatchInput) (domain.DiffSource, error) {
	if strings.TrimSpace(in.Raw) == "" {
		return domain.DiffSource{}, domain.ValidationErrors{{Field: "raw", Message: "can't be blank"}}
	}

	src, err := domain.ParseDiffSource(in.Raw)
	if err != nil {
		return domain.DiffSource{}, domain.ValidationErrors{{Field: "raw", Message: "is invalid"}}
	}
	if s := strings.TrimSpace(in.Subject); s != "" {
		src.Subject = s
	}
	if m := strings.TrimSpace(in.CommitMessage); m != "" {
		src.CommitMessage = m
	}
	return src, nil
}
