package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/posts/models"
)

// PostRepository defines persistence for post documents
type PostRepository interface {
	// Create stores a new post
	Create(ctx context.Context, post *models.Post) error

	// FindByID retrieves a post by its unique identifier
	FindByID(ctx context.Context, postID uuid.UUID) (*models.Post, error)

	// FindByOwner retrieves all posts by a single author, newest first
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error)

	// FindByOwners retrieves all posts by any of the given authors, newest first
	FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]models.Post, error)

	// AddLike adds a user to the post's like set, no-op when already present
	AddLike(ctx context.Context, postID, userID uuid.UUID) error

	// RemoveLike removes a user from the post's like set, no-op when absent
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error

	// AppendReply appends a reply to the post's reply list
	AppendReply(ctx context.Context, postID uuid.UUID, reply *models.Reply) error

	// Delete removes a post
	Delete(ctx context.Context, postID uuid.UUID) error
}
