package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryoishikawa/blog-api/internal/models"
	"github.com/ryoishikawa/blog-api/internal/repository"
	"github.com/ryoishikawa/blog-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type middlewareTestEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	tokenService *services.TokenService
	user         *models.User
}

func setupMiddlewareTestEnv(t *testing.T) middlewareTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Vote{}))

	tokenService, err := services.NewTokenService("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)

	user := &models.User{Email: "someone@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokenService, userRepo), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		current, ok := GetCurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": current.Email})
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return middlewareTestEnv{
		db:           db,
		router:       r,
		tokenService: tokenService,
		user:         user,
	}
}

func (env middlewareTestEnv) get(t *testing.T, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	token, err := env.tokenService.Issue(env.user.ID)
	require.NoError(t, err)

	w := env.get(t, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingOrMalformedHeader(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	token, err := env.tokenService.Issue(env.user.ID)
	require.NoError(t, err)

	for _, header := range []string{
		"",
		"Bearer",
		"Bearer ",
		token,
		"Basic " + token,
	} {
		w := env.get(t, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	w := env.get(t, "Bearer not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	expiredIssuer, err := services.NewTokenService("test-secret", "HS256", -time.Minute)
	require.NoError(t, err)

	token, err := expiredIssuer.Issue(env.user.ID)
	require.NoError(t, err)

	w := env.get(t, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// A token that verifies but whose subject no longer exists must be
// rejected: the user lookup is part of authentication, not an optional
// courtesy to handlers.
func TestRequireAuth_DeletedUser(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	token, err := env.tokenService.Issue(env.user.ID)
	require.NoError(t, err)

	require.NoError(t, env.db.Delete(&models.User{}, env.user.ID).Error)

	w := env.get(t, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
