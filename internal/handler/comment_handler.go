package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

// CommentHandler handles review comment HTTP requests.
type CommentHandler struct {
	comments CommentServiceInterface
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(comments CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// AddComments handles POST /mergeRequest/comment.
func (h *CommentHandler) AddComments(c *gin.Context) {
	var req CommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.comments.AddComments(c.Request.Context(), req.ID, domain.UserID(req.UserID), req.PatchVersion, req.Comments)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CommentCountResponse{Count: count})
}

// Comments handles GET /mergeRequest/comments.
func (h *CommentHandler) Comments(c *gin.Context) {
	var query IDQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()

	comments, err := h.comments.Comments(ctx, query.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	general, err := h.comments.HasGeneralComments(ctx, query.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := CommentsResponse{
		Comments:           make([]CommentResponse, 0, len(comments)),
		HasGeneralComments: general,
	}
	for _, cm := range comments {
		resp.Comments = append(resp.Comments, domainToCommentResponse(cm))
	}

	c.JSON(http.StatusOK, resp)
}

// People handles GET /mergeRequest/people.
func (h *CommentHandler) People(c *gin.Context) {
	var query IDQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	people, err := h.comments.PeopleInvolved(c.Request.Context(), query.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := PeopleResponse{UserIDs: make([]string, 0, len(people))}
	for _, id := range people {
		resp.UserIDs = append(resp.UserIDs, string(id))
	}

	c.JSON(http.StatusOK, resp)
}
