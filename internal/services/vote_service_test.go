package services

import (
	"testing"

	"github.com/ryoishikawa/blog-api/internal/models"
	"github.com/ryoishikawa/blog-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupVoteService(t *testing.T) (*VoteService, *models.User, *models.Post) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Vote{}))

	user := &models.User{Email: "voter@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	post := &models.Post{Title: "votable", Content: "x", Published: true, OwnerID: user.ID}
	require.NoError(t, db.Create(post).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	svc := NewVoteService(repository.NewPostRepository(db), repository.NewVoteRepository(db))
	return svc, user, post
}

// The toggle is a two-state machine per (user, post) pair: "up" is
// only valid from not-voted, "down" only from voted.
func TestVoteService_ToggleProtocol(t *testing.T) {
	svc, user, post := setupVoteService(t)

	// not-voted: down is invalid, up transitions to voted.
	require.ErrorIs(t, svc.Apply(user.ID, post.ID, DirectionDown), ErrVoteNotFound)
	require.NoError(t, svc.Apply(user.ID, post.ID, DirectionUp))

	// voted: up is invalid, down transitions back.
	require.ErrorIs(t, svc.Apply(user.ID, post.ID, DirectionUp), ErrAlreadyVoted)
	require.NoError(t, svc.Apply(user.ID, post.ID, DirectionDown))

	// and the machine is back where it started.
	require.ErrorIs(t, svc.Apply(user.ID, post.ID, DirectionDown), ErrVoteNotFound)
	require.NoError(t, svc.Apply(user.ID, post.ID, DirectionUp))
}

func TestVoteService_PostMustExist(t *testing.T) {
	svc, user, _ := setupVoteService(t)

	require.ErrorIs(t, svc.Apply(user.ID, 999, DirectionUp), ErrPostNotFound)
	require.ErrorIs(t, svc.Apply(user.ID, 999, DirectionDown), ErrPostNotFound)
}

func TestVoteService_InvalidDirection(t *testing.T) {
	svc, user, post := setupVoteService(t)

	require.Error(t, svc.Apply(user.ID, post.ID, Direction(2)))
}
