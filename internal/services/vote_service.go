package services

import (
	"errors"
	"fmt"

	"github.com/ryoishikawa/blog-api/internal/models"
	"github.com/ryoishikawa/blog-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyVoted = errors.New("already voted on this post")
	ErrVoteNotFound = errors.New("vote does not exist")
)

// Direction is the vote direction from the request: 1 adds the
// caller's vote, 0 removes it.
type Direction int

const (
	DirectionDown Direction = 0
	DirectionUp   Direction = 1
)

// VoteService implements the vote toggle protocol. Each (user, post)
// pair is either voted or not-voted; "up" is only valid from
// not-voted and "down" only from voted, and the invalid transitions
// are rejected rather than ignored. Repeating the same request is
// therefore an error, not a no-op.
type VoteService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
}

// NewVoteService creates a new VoteService.
func NewVoteService(postRepo repository.PostRepository, voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{
		postRepo: postRepo,
		voteRepo: voteRepo,
	}
}

// Apply casts or removes the user's vote on a post.
func (s *VoteService) Apply(userID, postID uint64, dir Direction) error {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to find post: %w", err)
	}

	_, err := s.voteRepo.Find(postID, userID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up vote: %w", err)
	}

	switch dir {
	case DirectionUp:
		if exists {
			return ErrAlreadyVoted
		}
		err := s.voteRepo.Create(&models.Vote{
			PostID: postID,
			UserID: userID,
		})
		// Two identical up-votes can race past the lookup; the
		// composite primary key decides the winner and the loser
		// gets the same conflict as the sequential case.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyVoted
		}
		if err != nil {
			return fmt.Errorf("failed to create vote: %w", err)
		}
		return nil
	case DirectionDown:
		if !exists {
			return ErrVoteNotFound
		}
		if err := s.voteRepo.Delete(postID, userID); err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("invalid vote direction: %d", dir)
	}
}
