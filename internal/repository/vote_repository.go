package repository

import (
	"github.com/ryoishikawa/blog-api/internal/models"
	"gorm.io/gorm"
)

// GormVoteRepository is a GORM implementation of VoteRepository
type GormVoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &GormVoteRepository{db: db}
}

// Find looks up the vote row for a (post, user) pair
func (r *GormVoteRepository) Find(postID, userID uint64) (*models.Vote, error) {
	var vote models.Vote
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// Create inserts a vote row
func (r *GormVoteRepository) Create(vote *models.Vote) error {
	return r.db.Create(vote).Error
}

// Delete removes the vote row for a (post, user) pair
func (r *GormVoteRepository) Delete(postID, userID uint64) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Vote{}).Error
}
