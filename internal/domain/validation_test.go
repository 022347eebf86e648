package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

func TestValidBranchName(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		want   bool
	}{
		{name: "simple", branch: "main", want: true},
		{name: "dots and hyphens", branch: "release-1.2", want: true},
		{name: "comma", branch: "a,b", want: true},
		{name: "underscore", branch: "feature_x", want: true},
		{name: "ends with dot", branch: "release.", want: false},
		{name: "ends with .lock", branch: "main.lock", want: false},
		{name: "lock without dot", branch: "mainlock", want: true},
		{name: "slash", branch: "feature/x", want: false},
		{name: "space", branch: "my branch", want: false},
		{name: "single character", branch: "a", want: false},
		{name: "empty", branch: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidBranchName(tt.branch))
		})
	}
}

func TestMergeRequest_Validate(t *testing.T) {
	reviewer := func(id domain.UserID) *domain.UserID { return &id }

	tests := []struct {
		name      string
		mr        *domain.MergeRequest
		wantField string
	}{
		{
			name: "valid",
			mr:   domain.NewMergeRequest("alice", "main", "Subject", t0),
		},
		{
			name:      "missing author",
			mr:        domain.NewMergeRequest("", "main", "Subject", t0),
			wantField: "author_id",
		},
		{
			name:      "missing subject",
			mr:        domain.NewMergeRequest("alice", "main", "", t0),
			wantField: "subject",
		},
		{
			name:      "missing target branch",
			mr:        domain.NewMergeRequest("alice", "", "Subject", t0),
			wantField: "target_branch",
		},
		{
			name:      "bad target branch",
			mr:        domain.NewMergeRequest("alice", "main.lock", "Subject", t0),
			wantField: "target_branch",
		},
		{
			name: "reviewer is author",
			mr: func() *domain.MergeRequest {
				mr := domain.NewMergeRequest("alice", "main", "Subject", t0)
				mr.ReviewerID = reviewer("alice")
				return mr
			}(),
			wantField: "reviewer_id",
		},
		{
			name: "distinct reviewer",
			mr: func() *domain.MergeRequest {
				mr := domain.NewMergeRequest("alice", "main", "Subject", t0)
				mr.ReviewerID = reviewer("bob")
				return mr
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mr.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
			assert.Equal(t, tt.wantField, verrs.Field())
		})
	}
}
