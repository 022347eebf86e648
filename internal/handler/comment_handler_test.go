package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/handler"
	"github.com/mishasvintus/merge_request_service/internal/handler/mocks"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

func TestCommentHandler_AddComments(t *testing.T) {
	batch := []domain.LocatedText{{Location: 0, Text: "looks good"}, {Location: 4, Text: "typo"}}

	tests := []struct {
		name             string
		requestBody      any
		mockSetup        func(*mocks.MockCommentServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - stores batch",
			requestBody: map[string]any{
				"id":            7,
				"user_id":       "carol",
				"patch_version": 1,
				"comments":      batch,
			},
			mockSetup: func(m *mocks.MockCommentServiceInterface) {
				m.EXPECT().AddComments(gomock.Any(), int64(7), domain.UserID("carol"), 1, batch).Return(2, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.CommentCountResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, 2, response.Count)
			},
		},
		{
			name: "error - patch version must be positive",
			requestBody: map[string]any{
				"id":            7,
				"user_id":       "carol",
				"patch_version": 0,
				"comments":      batch,
			},
			mockSetup:      func(*mocks.MockCommentServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "patch_version", decodeError(t, w).Field)
			},
		},
		{
			name: "error - unknown patch",
			requestBody: map[string]any{
				"id":            7,
				"user_id":       "carol",
				"patch_version": 5,
				"comments":      batch,
			},
			mockSetup: func(m *mocks.MockCommentServiceInterface) {
				m.EXPECT().AddComments(gomock.Any(), int64(7), domain.UserID("carol"), 5, batch).
					Return(0, service.ErrPatchNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorNotFound, decodeError(t, w).Code)
			},
		},
		{
			name:           "error - malformed body",
			requestBody:    "not an object",
			mockSetup:      func(*mocks.MockCommentServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				body := decodeError(t, w)
				assert.Equal(t, handler.ErrorBadRequest, body.Code)
				assert.Equal(t, "invalid request body", body.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			comments := mocks.NewMockCommentServiceInterface(ctrl)
			tt.mockSetup(comments)

			h := handler.NewCommentHandler(comments)
			c, w := postContext(t, "/mergeRequest/comment", tt.requestBody)

			h.AddComments(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestCommentHandler_Comments(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentServiceInterface(ctrl)
	comments.EXPECT().Comments(gomock.Any(), int64(7)).Return([]domain.Comment{
		{ID: 1, MergeRequestID: 7, PatchVersion: 1, AuthorID: "carol", Content: "looks good", CreatedAt: now},
	}, nil)
	comments.EXPECT().HasGeneralComments(gomock.Any(), int64(7)).Return(true, nil)

	h := handler.NewCommentHandler(comments)
	c, w := getContext(t, "/mergeRequest/comments?id=7")

	h.Comments(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response handler.CommentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.HasGeneralComments)
	require.Len(t, response.Comments, 1)
	assert.Equal(t, "carol", response.Comments[0].AuthorID)
	assert.Equal(t, "2026-03-01T12:00:00Z", response.Comments[0].CreatedAt)
}

func TestCommentHandler_People(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := mocks.NewMockCommentServiceInterface(ctrl)
		comments.EXPECT().PeopleInvolved(gomock.Any(), int64(7)).Return([]domain.UserID{"alice", "bob"}, nil)

		h := handler.NewCommentHandler(comments)
		c, w := getContext(t, "/mergeRequest/people?id=7")

		h.People(c)

		require.Equal(t, http.StatusOK, w.Code)
		var response handler.PeopleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"alice", "bob"}, response.UserIDs)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := mocks.NewMockCommentServiceInterface(ctrl)
		comments.EXPECT().PeopleInvolved(gomock.Any(), int64(8)).Return(nil, service.ErrMergeRequestNotFound)

		h := handler.NewCommentHandler(comments)
		c, w := getContext(t, "/mergeRequest/people?id=8")

		h.People(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
