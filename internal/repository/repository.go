package repository

import (
	"github.com/ryoishikawa/blog-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (case-sensitive match)
	FindByEmail(email string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID
	FindByID(id uint64) (*models.Post, error)

	// Update persists the full post state
	Update(post *models.Post) error

	// Delete removes a post and its votes
	Delete(id uint64) error

	// ListWithVotes lists posts with their vote counts
	ListWithVotes(filter PostFilter) ([]PostWithVotes, error)

	// GetWithVotes returns one post with its vote count
	GetWithVotes(id uint64) (*PostWithVotes, error)
}

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	// Find looks up the vote row for a (post, user) pair
	Find(postID, userID uint64) (*models.Vote, error)

	// Create inserts a vote row; a duplicate pair surfaces as
	// gorm.ErrDuplicatedKey from the composite primary key
	Create(vote *models.Vote) error

	// Delete removes the vote row for a (post, user) pair
	Delete(postID, userID uint64) error
}

// PostFilter holds search and pagination options for listing posts
type PostFilter struct {
	Search string
	Limit  int
	Skip   int
}

// PostWithVotes is one row of the aggregation query: a post joined
// with the count of its vote rows.
type PostWithVotes struct {
	models.Post
	Votes int64 `json:"votes"`
}
