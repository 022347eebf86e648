package integration

import (
	"context"
	"fmt"
	"net/http"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// GitLabBranchRemover deletes branches through the GitLab API.
type GitLabBranchRemover struct {
	client  *gitlab.Client
	project string
}

// NewGitLabBranchRemover creates a remover for project, given as an id or a
// "group/name" path.
func NewGitLabBranchRemover(baseURL, token, project string) (*GitLabBranchRemover, error) {
	var opts []gitlab.ClientOptionFunc
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}
	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	return &GitLabBranchRemover{client: client, project: project}, nil
}

// RemoveBranch treats an already missing branch as removed.
func (r *GitLabBranchRemover) RemoveBranch(ctx context.Context, branch string) error {
	resp, err := r.client.Branches.DeleteBranch(r.project, branch, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete branch %s: %w", branch, err)
	}
	return nil
}
