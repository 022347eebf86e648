package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/service"
)

// MergeRequestHandler handles merge request lifecycle HTTP requests.
type MergeRequestHandler struct {
	lifecycle LifecycleServiceInterface
	interdiff InterdiffServiceInterface
}

// NewMergeRequestHandler creates a new merge request handler.
func NewMergeRequestHandler(lifecycle LifecycleServiceInterface, interdiff InterdiffServiceInterface) *MergeRequestHandler {
	return &MergeRequestHandler{lifecycle: lifecycle, interdiff: interdiff}
}

// Create handles POST /mergeRequest/create.
func (h *MergeRequestHandler) Create(c *gin.Context) {
	var req CreateMergeRequestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	mr, err := h.lifecycle.Create(c.Request.Context(), service.CreateInput{
		AuthorID:     domain.UserID(req.AuthorID),
		TargetBranch: req.TargetBranch,
		Subject:      req.Subject,
		Patch:        req.Patch.input(),
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		MergeRequest: domainToMergeRequestResponse(mr),
	})
}

// Get handles GET /mergeRequest/get.
func (h *MergeRequestHandler) Get(c *gin.Context) {
	var query IDQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	mr, err := h.lifecycle.Get(c.Request.Context(), query.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		MergeRequest: domainToMergeRequestResponse(mr),
	})
}

// List handles GET /mergeRequest/list.
func (h *MergeRequestHandler) List(c *gin.Context) {
	var query ListQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	state := domain.ListState(query.State)
	if state == "" {
		state = domain.ListAll
	}

	summaries, err := h.lifecycle.List(c.Request.Context(), state)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := ListResponse{MergeRequests: make([]SummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.MergeRequests = append(resp.MergeRequests, domainToSummaryResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles POST /mergeRequest/update.
func (h *MergeRequestHandler) Update(c *gin.Context) {
	var req UpdateMergeRequestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	mr, err := h.lifecycle.Update(c.Request.Context(), req.ID, req.Subject, req.TargetBranch)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		MergeRequest: domainToMergeRequestResponse(mr),
	})
}

// AddPatch handles POST /mergeRequest/addPatch.
func (h *MergeRequestHandler) AddPatch(c *gin.Context) {
	var req AddPatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	patch, err := h.lifecycle.AddPatch(c.Request.Context(), req.ID, req.Patch.input())
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Patch: domainToPatchResponse(patch),
	})
}

// Diff handles GET /mergeRequest/diff. The interdiff is returned as plain text.
func (h *MergeRequestHandler) Diff(c *gin.Context) {
	var query DiffQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	diff, err := h.interdiff.DiffBetween(c.Request.Context(), query.ID, query.From, query.To)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.String(http.StatusOK, diff)
}

// Integrate handles POST /mergeRequest/integrate. The push runs in the
// background, so the response shows the request while it is integrating.
func (h *MergeRequestHandler) Integrate(c *gin.Context) {
	var req ActorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	mr, err := h.lifecycle.Integrate(c.Request.Context(), req.ID, domain.UserID(req.UserID))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, SuccessResponse{
		MergeRequest: domainToMergeRequestResponse(mr),
	})
}

// Abandon handles POST /mergeRequest/abandon.
func (h *MergeRequestHandler) Abandon(c *gin.Context) {
	var req ActorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	mr, err := h.lifecycle.Abandon(c.Request.Context(), req.ID, domain.UserID(req.UserID))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		MergeRequest: domainToMergeRequestResponse(mr),
	})
}
