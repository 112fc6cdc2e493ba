package repository

import (
	"github.com/ryoishikawa/blog-api/internal/database"
	"github.com/ryoishikawa/blog-api/internal/models"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update persists the full post state
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post and its votes in one transaction
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Post{}, id).Error
	})
}

// withVoteCounts builds the posts LEFT JOIN votes aggregation shared by
// ListWithVotes and GetWithVotes. COUNT(votes.post_id) counts only
// matching vote rows, so a post without votes comes back as 0.
func (r *GormPostRepository) withVoteCounts() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Select("posts.*, count(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id")
}

// ListWithVotes lists posts with their vote counts. The title filter is
// a case-sensitive substring match. Ordering by posts.id is deliberate:
// pagination must not depend on whatever order the database feels like.
func (r *GormPostRepository) ListWithVotes(filter PostFilter) ([]PostWithVotes, error) {
	var rows []PostWithVotes
	err := r.withVoteCounts().
		Where("posts.title LIKE ?", "%"+filter.Search+"%").
		Order("posts.id").
		Scopes(database.Paginate(filter.Limit, filter.Skip)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetWithVotes returns one post with its vote count
func (r *GormPostRepository) GetWithVotes(id uint64) (*PostWithVotes, error) {
	var rows []PostWithVotes
	err := r.withVoteCounts().
		Where("posts.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
