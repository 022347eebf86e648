package handler

import (
	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

// PatchRequest is an uploaded patch revision.
type PatchRequest struct {
	Raw           string `json:"raw" binding:"required"`
	Subject       string `json:"subject"`
	CommitMessage string `json:"commit_message"`
	Description   string `json:"description"`
	LinterOK      bool   `json:"linter_ok"`
	CIEnabled     *bool  `json:"ci_enabled"`
}

func (r PatchRequest) input() service.PatchInput {
	ciEnabled := true
	if r.CIEnabled != nil {
		ciEnabled = *r.CIEnabled
	}
	return service.PatchInput{
		Raw:           r.Raw,
		Subject:       r.Subject,
		CommitMessage: r.CommitMessage,
		Description:   r.Description,
		LinterOK:      r.LinterOK,
		CIEnabled:     ciEnabled,
	}
}

// CreateMergeRequestRequest represents request body for POST /mergeRequest/create.
type CreateMergeRequestRequest struct {
	AuthorID     string        `json:"author_id" binding:"required"`
	TargetBranch string        `json:"target_branch" binding:"required,branchname"`
	Subject      string        `json:"subject"`
	Patch        *PatchRequest `json:"patch" binding:"required"`
}

// UpdateMergeRequestRequest represents request body for POST /mergeRequest/update.
type UpdateMergeRequestRequest struct {
	ID           int64  `json:"id" binding:"required"`
	Subject      string `json:"subject"`
	TargetBranch string `json:"target_branch" binding:"omitempty,branchname"`
}

// AddPatchRequest represents request body for POST /mergeRequest/addPatch.
type AddPatchRequest struct {
	ID    int64         `json:"id" binding:"required"`
	Patch *PatchRequest `json:"patch" binding:"required"`
}

// CommentRequest represents request body for POST /mergeRequest/comment.
type CommentRequest struct {
	ID           int64                `json:"id" binding:"required"`
	UserID       string               `json:"user_id" binding:"required"`
	PatchVersion int                  `json:"patch_version" binding:"required,min=1"`
	Comments     []domain.LocatedText `json:"comments" binding:"required"`
}

// ActorRequest represents request body for POST /mergeRequest/integrate and
// POST /mergeRequest/abandon.
type ActorRequest struct {
	ID     int64  `json:"id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

// IDQuery is the query of read endpoints addressing one merge request.
type IDQuery struct {
	ID int64 `form:"id" json:"id" binding:"required"`
}

// ListQuery represents query for GET /mergeRequest/list.
type ListQuery struct {
	State string `form:"state" json:"state" binding:"omitempty,oneof=all pending closed"`
}

// DiffQuery represents query for GET /mergeRequest/diff. Out-of-range versions
// are reported by the service as not found.
type DiffQuery struct {
	ID   int64 `form:"id" json:"id" binding:"required"`
	From *int  `form:"from" json:"from"`
	To   *int  `form:"to" json:"to"`
}
