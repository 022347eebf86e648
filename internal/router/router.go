package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mishasvintus/merge_request_service/internal/handler"
	"github.com/mishasvintus/merge_request_service/internal/logging"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	logger zerolog.Logger,
	mergeRequestHandler *handler.MergeRequestHandler,
	commentHandler *handler.CommentHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Merge request endpoints
	r.POST("/mergeRequest/create", mergeRequestHandler.Create)
	r.GET("/mergeRequest/get", mergeRequestHandler.Get)
	r.GET("/mergeRequest/list", mergeRequestHandler.List)
	r.POST("/mergeRequest/update", mergeRequestHandler.Update)
	r.POST("/mergeRequest/addPatch", mergeRequestHandler.AddPatch)
	r.GET("/mergeRequest/diff", mergeRequestHandler.Diff)
	r.POST("/mergeRequest/integrate", mergeRequestHandler.Integrate)
	r.POST("/mergeRequest/abandon", mergeRequestHandler.Abandon)

	// Comment endpoints
	r.POST("/mergeRequest/comment", commentHandler.AddComments)
	r.GET("/mergeRequest/comments", commentHandler.Comments)
	r.GET("/mergeRequest/people", commentHandler.People)

	return r
}
