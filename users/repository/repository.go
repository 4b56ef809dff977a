package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/users/models"
)

// UserRepository defines read access to member profiles
type UserRepository interface {
	// FindByID retrieves a user by their unique identifier
	FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// FindByUsername retrieves a user by their username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
