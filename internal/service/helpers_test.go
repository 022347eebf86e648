package service_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/integration"
	"github.com/mishasvintus/merge_request_service/internal/integration/mocks"
	"github.com/mishasvintus/merge_request_service/internal/repository/memory"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

type fixture struct {
	store     *memory.Store
	bridge    *mocks.MockBridge
	differ    *recordingDiffer
	lifecycle *service.LifecycleService
	comments  *service.CommentService
	interdiff *service.InterdiffService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStore(t, memory.NewStore())
}

func newFixtureWithStore(t *testing.T, store service.Store) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		bridge: mocks.NewMockBridge(ctrl),
		differ: &recordingDiffer{},
	}
	if m, ok := store.(*memory.Store); ok {
		f.store = m
	}
	f.lifecycle = service.NewLifecycleService(store, f.bridge, zerolog.Nop())
	f.comments = service.NewCommentService(store, f.lifecycle, zerolog.Nop())
	f.interdiff = service.NewInterdiffService(store, f.differ)
	t.Cleanup(f.lifecycle.Wait)
	return f
}

func patchInput(raw string) service.PatchInput {
	return service.PatchInput{Raw: raw, LinterOK: true, CIEnabled: true}
}

func (f *fixture) create(t *testing.T) *domain.MergeRequest {
	t.Helper()
	mr, err := f.lifecycle.Create(context.Background(), service.CreateInput{
		AuthorID:     "alice",
		TargetBranch: "main",
		Subject:      "Fix parser",
		Patch:        patchInput("diff --git a/x b/x\nindex 1..2\n-a\n+b\n"),
	})
	require.NoError(t, err)
	return mr
}

// forceStatus moves a stored request to status without going through the
// lifecycle operations.
func (f *fixture) forceStatus(t *testing.T, id int64, status domain.Status) {
	t.Helper()
	ctx := context.Background()
	mr, err := f.store.Get(ctx, id)
	require.NoError(t, err)
	mr.Status = status
	if status == domain.StatusIntegrating || status == domain.StatusAccepted {
		reviewer := domain.UserID("bob")
		mr.ReviewerID = &reviewer
	}
	require.NoError(t, f.store.Save(ctx, mr))
}

func (f *fixture) reload(t *testing.T, id int64) *domain.MergeRequest {
	t.Helper()
	mr, err := f.lifecycle.Get(context.Background(), id)
	require.NoError(t, err)
	return mr
}

func whats(mr *domain.MergeRequest) []string {
	var out []string
	for _, e := range mr.History().Events() {
		out = append(out, e.What)
	}
	return out
}

// pushFuture hands out a result channel whose outcome the test decides.
type pushFuture struct {
	ch chan integration.PushResult
}

func newPushFuture() *pushFuture {
	return &pushFuture{ch: make(chan integration.PushResult, 1)}
}

func (p *pushFuture) channel() <-chan integration.PushResult {
	return p.ch
}

func (p *pushFuture) resolve(success bool) {
	p.ch <- integration.PushResult{Success: success}
	close(p.ch)
}

type recordingDiffer struct {
	mu    sync.Mutex
	calls [][2]string
	err   error
}

func (d *recordingDiffer) Interdiff(_ context.Context, oldDiff, newDiff string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, [2]string{oldDiff, newDiff})
	if d.err != nil {
		return "", d.err
	}
	return fmt.Sprintf("interdiff(%s|%s)", strings.TrimSpace(oldDiff), strings.TrimSpace(newDiff)), nil
}
