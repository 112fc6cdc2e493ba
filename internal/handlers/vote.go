package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/ryoishikawa/blog-api/internal/errors"
	"github.com/ryoishikawa/blog-api/internal/middleware"
	"github.com/ryoishikawa/blog-api/internal/services"
)

// VoteHandler serves the vote toggle endpoint.
type VoteHandler struct {
	voteService *services.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// Vote casts (dir=1) or removes (dir=0) the caller's vote on a post.
func (h *VoteHandler) Vote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type VoteRequest struct {
		PostID uint64 `json:"post_id" binding:"required"`
		Dir    *int   `json:"dir" binding:"required"`
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "", err.Error())
		return
	}
	if *req.Dir != 0 && *req.Dir != 1 {
		apierrors.UnprocessableEntity(c, "dir must be 0 or 1", nil)
		return
	}

	dir := services.Direction(*req.Dir)
	if err := h.voteService.Apply(userID, req.PostID, dir); err != nil {
		respondVoteError(c, err)
		return
	}

	message := "successfully added vote"
	if dir == services.DirectionDown {
		message = "successfully deleted vote"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

func respondVoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrVoteNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyVoted):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
