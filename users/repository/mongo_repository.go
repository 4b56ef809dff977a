package repository

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/internal/database/interfaces"
	"github.com/waveline-social/waveline/users/models"
)

const usersCollection = "users"

// MongoUserRepository implements UserRepository on top of the generic
// document repository.
type MongoUserRepository struct {
	db interfaces.Repository
}

// NewMongoUserRepository creates a new MongoDB-backed user repository
func NewMongoUserRepository(db interfaces.Repository) *MongoUserRepository {
	return &MongoUserRepository{db: db}
}

// FindByID retrieves a user by their unique identifier
func (r *MongoUserRepository) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	filter := map[string]interface{}{"objectId": userID}
	return r.findOne(ctx, filter)
}

// FindByUsername retrieves a user by their username
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	filter := map[string]interface{}{"username": username}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter map[string]interface{}) (*models.User, error) {
	result := <-r.db.FindOne(ctx, usersCollection, filter)
	if result.Error() != nil {
		if result.Error() == interfaces.ErrNoDocuments {
			return nil, interfaces.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error())
	}

	var user models.User
	if err := result.Decode(&user); err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, interfaces.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
