package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryoishikawa/blog-api/internal/dto"
	apierrors "github.com/ryoishikawa/blog-api/internal/errors"
	"github.com/ryoishikawa/blog-api/internal/services"
)

// AuthHandler coordinates login and token issuance.
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Login authenticates form credentials and returns a bearer token.
// The username field carries the email.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.UnprocessableEntity(c, "username and password are required", err.Error())
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Forbidden(c, "Invalid credentials")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
