package services

import (
	"errors"
	"fmt"

	"github.com/ryoishikawa/blog-api/internal/models"
	"github.com/ryoishikawa/blog-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the owner of this post")
)

// PostService handles post CRUD and the vote-count read queries.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// PostInput holds the caller-editable post fields. Published defaults
// to true when the request omits it.
type PostInput struct {
	Title     string
	Content   string
	Published *bool
}

func (in PostInput) published() bool {
	if in.Published == nil {
		return true
	}
	return *in.Published
}

// CanModify is the ownership predicate: only the recorded owner may
// mutate or delete a post.
func CanModify(userID uint64, post *models.Post) bool {
	return post.OwnerID == userID
}

// Create creates a post owned by the given user. The owner always
// comes from the authenticated caller, never from the request body.
func (s *PostService) Create(ownerID uint64, input PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: input.published(),
		OwnerID:   ownerID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Update overwrites title, content and published after the existence
// and ownership checks.
func (s *PostService) Update(id, actorID uint64, input PostInput) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if !CanModify(actorID, post) {
		return nil, ErrNotPostOwner
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Published = input.published()

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post after the same existence and ownership checks
// as Update.
func (s *PostService) Delete(id, actorID uint64) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to find post: %w", err)
	}

	if !CanModify(actorID, post) {
		return ErrNotPostOwner
	}

	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

// List returns posts with vote counts, filtered and paginated.
func (s *PostService) List(search string, limit, skip int) ([]repository.PostWithVotes, error) {
	return s.postRepo.ListWithVotes(repository.PostFilter{
		Search: search,
		Limit:  limit,
		Skip:   skip,
	})
}

// Get returns one post with its vote count.
func (s *PostService) Get(id uint64) (*repository.PostWithVotes, error) {
	row, err := s.postRepo.GetWithVotes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return row, nil
}
