package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryoishikawa/blog-api/internal/constants"
	apierrors "github.com/ryoishikawa/blog-api/internal/errors"
	"github.com/ryoishikawa/blog-api/internal/models"
	"github.com/ryoishikawa/blog-api/internal/repository"
	"github.com/ryoishikawa/blog-api/internal/services"
)

// RequireAuth verifies the bearer token and resolves the current user
// before any handler logic runs. The user lookup is not optional: a
// syntactically valid token whose subject has been deleted is rejected
// the same as a bad signature.
func RequireAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <t>"
// header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetCurrentUser retrieves the resolved user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}
