package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ryoishikawa/blog-api/internal/dto"
	apierrors "github.com/ryoishikawa/blog-api/internal/errors"
	"github.com/ryoishikawa/blog-api/internal/middleware"
	"github.com/ryoishikawa/blog-api/internal/services"
	"github.com/ryoishikawa/blog-api/internal/utils"
)

// PostHandler serves the post CRUD and listing endpoints. All routes
// sit behind RequireAuth.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// PostRequest is the create/update body. Omitting published means
// published.
type PostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

func (r PostRequest) toInput() services.PostInput {
	return services.PostInput{
		Title:     r.Title,
		Content:   r.Content,
		Published: r.Published,
	}
}

// List returns posts with vote counts, filtered by an optional title
// search and paginated with limit/skip.
func (h *PostHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	search := c.Query("search")

	rows, err := h.postService.List(search, params.Limit, params.Skip)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToPostWithVotesList(rows)})
}

// Get returns one post with its vote count.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	row, err := h.postService.Get(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToPostWithVotesDTO(*row)})
}

// Create creates a post owned by the caller.
func (h *PostHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "", err.Error())
		return
	}

	post, err := h.postService.Create(userID, req.toInput())
	if err != nil {
		apierrors.InternalError(c, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostDTO(*post))
}

// Update overwrites a post the caller owns.
func (h *PostHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "", err.Error())
		return
	}

	post, err := h.postService.Update(id, userID, req.toInput())
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// Delete removes a post the caller owns.
func (h *PostHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(id, userID); err != nil {
		respondPostError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func postID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.UnprocessableEntity(c, "invalid post id", nil)
		return 0, false
	}
	return id, true
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotPostOwner):
		apierrors.Forbidden(c, "Not authorised to perform requested action")
	default:
		apierrors.InternalError(c, "")
	}
}
