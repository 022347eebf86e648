package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/merge_request_service/internal/handler"
	"github.com/mishasvintus/merge_request_service/internal/integration"
	"github.com/mishasvintus/merge_request_service/internal/interdiff"
	"github.com/mishasvintus/merge_request_service/internal/logging"
	"github.com/mishasvintus/merge_request_service/internal/repository/memory"
	"github.com/mishasvintus/merge_request_service/internal/router"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

type testServer struct {
	engine    *gin.Engine
	lifecycle *service.LifecycleService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handler.RegisterValidations())

	logger := zerolog.Nop()
	store := memory.NewStore()
	lifecycle := service.NewLifecycleService(store, integration.NewDryRunBridge(logger), logger)
	comments := service.NewCommentService(store, lifecycle, logger)
	diffs := service.NewInterdiffService(store, interdiff.NewLineDiffer())
	t.Cleanup(lifecycle.Wait)

	return &testServer{
		engine: router.SetupRoutes(
			logger,
			handler.NewMergeRequestHandler(lifecycle, diffs),
			handler.NewCommentHandler(comments),
		),
		lifecycle: lifecycle,
	}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, target, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(logging.RequestIDHeader))
}

func TestMergeRequestLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/mergeRequest/create", map[string]any{
		"author_id":     "alice",
		"target_branch": "main",
		"patch": map[string]any{
			"raw": "From 1 Mon Sep 17 00:00:00 2001\nSubject: [PATCH] Fix parser\n\nHandle empty input.\n---\ndiff --git a/p.go b/p.go\n-old\n+new\n",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[handler.SuccessResponse](t, w)
	id := created.MergeRequest.ID
	assert.Equal(t, "Fix parser", created.MergeRequest.Subject)
	assert.Empty(t, created.MergeRequest.History)

	w = s.do(t, http.MethodPost, "/mergeRequest/addPatch", map[string]any{
		"id":    id,
		"patch": map[string]any{"raw": "diff --git a/p.go b/p.go\n-old\n+newer\n", "description": "rework"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 2, decode[handler.SuccessResponse](t, w).Patch.Version)

	w = s.do(t, http.MethodGet, "/mergeRequest/diff?id="+itoa(id)+"&from=1&to=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "+newer")

	w = s.do(t, http.MethodPost, "/mergeRequest/comment", map[string]any{
		"id":            id,
		"user_id":       "carol",
		"patch_version": 2,
		"comments":      []map[string]any{{"location": 0, "text": "looks good"}, {"location": 3, "text": "  "}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, decode[handler.CommentCountResponse](t, w).Count)

	w = s.do(t, http.MethodPost, "/mergeRequest/integrate", map[string]any{"id": id, "user_id": "bob"})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	s.lifecycle.Wait()

	w = s.do(t, http.MethodGet, "/mergeRequest/get?id="+itoa(id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	mr := decode[handler.SuccessResponse](t, w).MergeRequest
	assert.Equal(t, "accepted", mr.Status)
	assert.Equal(t, "bob", mr.ReviewerID)

	whats := make([]string, len(mr.History))
	for i, e := range mr.History {
		whats[i] = e.What
	}
	assert.Equal(t, []string{"updated the merge request", "added a comment.", "accepted the merge request"}, whats)

	w = s.do(t, http.MethodPost, "/mergeRequest/addPatch", map[string]any{
		"id":    id,
		"patch": map[string]any{"raw": "diff v3"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/mergeRequest/people?id="+itoa(id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"carol", "bob", "alice"}, decode[handler.PeopleResponse](t, w).UserIDs)

	w = s.do(t, http.MethodGet, "/mergeRequest/list?state=closed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[handler.ListResponse](t, w).MergeRequests, 1)

	w = s.do(t, http.MethodGet, "/mergeRequest/list?state=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[handler.ListResponse](t, w).MergeRequests)
}

func TestDiffRangeErrorsAreNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/mergeRequest/create", map[string]any{
		"author_id":     "alice",
		"target_branch": "main",
		"subject":       "Range",
		"patch":         map[string]any{"raw": "diff --git a/x b/x\n-a\n+b\n"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := itoa(decode[handler.SuccessResponse](t, w).MergeRequest.ID)

	for _, query := range []string{"from=1&to=0", "from=0&to=0", "from=1&to=1", "from=-1&to=1", "from=0&to=2"} {
		t.Run(query, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/mergeRequest/diff?id="+id+"&"+query, nil)

			assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
			assert.Equal(t, handler.ErrorNotFound, decode[handler.ErrorResponse](t, w).Error.Code)
		})
	}

	w = s.do(t, http.MethodGet, "/mergeRequest/diff?id="+id+"&from=0&to=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMergeRequestNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/mergeRequest/abandon", map[string]any{"id": 404, "user_id": "alice"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, handler.ErrorNotFound, decode[handler.ErrorResponse](t, w).Error.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
