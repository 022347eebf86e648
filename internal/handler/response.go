package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/logging"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

// ErrorCode identifies the kind of a failed request.
type ErrorCode string

const (
	ErrorBadRequest   ErrorCode = "BAD_REQUEST"
	ErrorValidation   ErrorCode = "VALIDATION_ERROR"
	ErrorNotFound     ErrorCode = "NOT_FOUND"
	ErrorCannotUpdate ErrorCode = "CANNOT_UPDATE"
	ErrorStaleObject  ErrorCode = "STALE_OBJECT"
	ErrorInternal     ErrorCode = "INTERNAL"
)

// ErrorBody is the payload of ErrorResponse. RequestID is set on internal
// errors and matches the access log line.
type ErrorBody struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SuccessResponse represents success response structure.
type SuccessResponse struct {
	MergeRequest *MergeRequestResponse `json:"merge_request,omitempty"`
	Patch        *PatchResponse        `json:"patch,omitempty"`
}

// MergeRequestResponse is the full view of a merge request.
type MergeRequestResponse struct {
	ID           int64                  `json:"id"`
	AuthorID     string                 `json:"author_id"`
	ReviewerID   string                 `json:"reviewer_id,omitempty"`
	TargetBranch string                 `json:"target_branch"`
	Subject      string                 `json:"subject"`
	Status       string                 `json:"status"`
	CanUpdate    bool                   `json:"can_update"`
	Closed       bool                   `json:"closed"`
	LockVersion  int                    `json:"lock_version"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
	Patches      []PatchResponse        `json:"patches"`
	History      []HistoryEventResponse `json:"history"`
}

// PatchResponse represents one patch version.
type PatchResponse struct {
	Version       int    `json:"version"`
	Label         string `json:"label"`
	Subject       string `json:"subject"`
	CommitMessage string `json:"commit_message"`
	Description   string `json:"description,omitempty"`
	Diff          string `json:"diff"`
	LinterOK      bool   `json:"linter_ok"`
	CIStatus      string `json:"ci_status"`
	CIBranch      string `json:"ci_branch"`
	CreatedAt     string `json:"created_at"`
}

// HistoryEventResponse represents one audit trail entry.
type HistoryEventResponse struct {
	Who  string `json:"who"`
	What string `json:"what"`
	When string `json:"when"`
}

// ListResponse wraps list response.
type ListResponse struct {
	MergeRequests []SummaryResponse `json:"merge_requests"`
}

// SummaryResponse represents a merge request in lists.
type SummaryResponse struct {
	ID           int64  `json:"id"`
	AuthorID     string `json:"author_id"`
	ReviewerID   string `json:"reviewer_id,omitempty"`
	TargetBranch string `json:"target_branch"`
	Subject      string `json:"subject"`
	Status       string `json:"status"`
	UpdatedAt    string `json:"updated_at"`
}

// CommentCountResponse wraps the number of stored comments.
type CommentCountResponse struct {
	Count int `json:"count"`
}

// CommentsResponse wraps comments of a merge request.
type CommentsResponse struct {
	Comments           []CommentResponse `json:"comments"`
	HasGeneralComments bool              `json:"has_general_comments"`
}

// CommentResponse represents one comment.
type CommentResponse struct {
	ID           int64  `json:"id"`
	PatchVersion int    `json:"patch_version"`
	AuthorID     string `json:"author_id"`
	Content      string `json:"content"`
	Location     int    `json:"location"`
	CreatedAt    string `json:"created_at"`
}

// PeopleResponse wraps the users involved in a merge request.
type PeopleResponse struct {
	UserIDs []string `json:"user_ids"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, ErrorBadRequest, message, http.StatusBadRequest)
}

// ValidationFailed sends 400 error naming the offending field.
func ValidationFailed(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    ErrorValidation,
		Message: message,
		Field:   field,
	}})
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
		Code:      ErrorInternal,
		Message:   message,
		RequestID: logging.RequestID(c),
	}})
}

// serviceError maps a service error to its response.
func serviceError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		ValidationFailed(c, verrs.Field(), verrs.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrCannotUpdate):
		Conflict(c, ErrorCannotUpdate, err.Error())
	case errors.Is(err, service.ErrStaleObject):
		Conflict(c, ErrorStaleObject, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func reviewerString(id *domain.UserID) string {
	if id == nil {
		return ""
	}
	return string(*id)
}

func domainToMergeRequestResponse(mr *domain.MergeRequest) *MergeRequestResponse {
	resp := &MergeRequestResponse{
		ID:           mr.ID,
		AuthorID:     string(mr.AuthorID),
		ReviewerID:   reviewerString(mr.ReviewerID),
		TargetBranch: mr.TargetBranch,
		Subject:      mr.Subject,
		Status:       mr.Status.String(),
		CanUpdate:    mr.CanUpdate(),
		Closed:       mr.IsClosed(),
		LockVersion:  mr.LockVersion,
		CreatedAt:    formatTime(mr.CreatedAt),
		UpdatedAt:    formatTime(mr.UpdatedAt),
		Patches:      []PatchResponse{},
		History:      []HistoryEventResponse{},
	}

	for _, p := range mr.Patches().All() {
		resp.Patches = append(resp.Patches, *domainToPatchResponse(p))
	}
	for _, e := range mr.History().Events() {
		resp.History = append(resp.History, HistoryEventResponse{
			Who:  string(e.Actor),
			What: e.What,
			When: formatTime(e.At),
		})
	}

	return resp
}

func domainToPatchResponse(p domain.Patch) *PatchResponse {
	return &PatchResponse{
		Version:       p.Version,
		Label:         p.Label(),
		Subject:       p.Subject,
		CommitMessage: p.CommitMessage,
		Description:   p.Description,
		Diff:          p.Diff,
		LinterOK:      p.LinterOK,
		CIStatus:      string(p.CIStatus),
		CIBranch:      p.CIBranch(),
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func domainToSummaryResponse(s domain.MergeRequestSummary) SummaryResponse {
	return SummaryResponse{
		ID:           s.ID,
		AuthorID:     string(s.AuthorID),
		ReviewerID:   reviewerString(s.ReviewerID),
		TargetBranch: s.TargetBranch,
		Subject:      s.Subject,
		Status:       s.Status.String(),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func domainToCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		ID:           c.ID,
		PatchVersion: c.PatchVersion,
		AuthorID:     string(c.AuthorID),
		Content:      c.Content,
		Location:     c.Location,
		CreatedAt:    formatTime(c.CreatedAt),
	}
}
