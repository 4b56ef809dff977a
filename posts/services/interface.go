package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/internal/types"
	"github.com/waveline-social/waveline/posts/models"
)

// Service defines the post service operations
type Service interface {
	// CreatePost creates a new post for the authenticated user, uploading
	// the attached image when one is present
	CreatePost(ctx context.Context, user types.UserContext, req *models.CreatePostRequest) (*models.Post, error)

	// DeletePost deletes a post owned by the authenticated user together
	// with its stored media
	DeletePost(ctx context.Context, user types.UserContext, postID uuid.UUID) error

	// GetPost retrieves a single post by id
	GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error)

	// GetFeed retrieves posts authored by users the given user follows,
	// newest first
	GetFeed(ctx context.Context, userID uuid.UUID) ([]models.Post, error)

	// GetPostsByUsername retrieves all posts by the named author, newest first
	GetPostsByUsername(ctx context.Context, username string) ([]models.Post, error)

	// ToggleLike flips the authenticated user's like on a post and reports
	// whether the post is liked after the call
	ToggleLike(ctx context.Context, user types.UserContext, postID uuid.UUID) (bool, error)

	// AddReply appends a reply by the authenticated user to a post
	AddReply(ctx context.Context, user types.UserContext, postID uuid.UUID, req *models.ReplyRequest) (*models.Reply, error)
}
