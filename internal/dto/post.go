package dto

import (
	"time"

	"github.com/ryoishikawa/blog-api/internal/models"
	"github.com/ryoishikawa/blog-api/internal/repository"
)

// PostDTO represents a post in API responses
type PostDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	OwnerID   uint64    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostWithVotesDTO pairs a post with its vote count in read responses
type PostWithVotesDTO struct {
	Post  PostDTO `json:"post"`
	Votes int64   `json:"votes"`
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		OwnerID:   post.OwnerID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// ToPostWithVotesDTO converts an aggregation row to its response shape
func ToPostWithVotesDTO(row repository.PostWithVotes) PostWithVotesDTO {
	return PostWithVotesDTO{
		Post:  ToPostDTO(row.Post),
		Votes: row.Votes,
	}
}

// ToPostWithVotesList converts a slice of aggregation rows
func ToPostWithVotesList(rows []repository.PostWithVotes) []PostWithVotesDTO {
	items := make([]PostWithVotesDTO, len(rows))
	for i, row := range rows {
		items[i] = ToPostWithVotesDTO(row)
	}
	return items
}
