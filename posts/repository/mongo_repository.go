package repository

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/internal/database/interfaces"
	"github.com/waveline-social/waveline/posts/models"
)

const postsCollection = "posts"

// newest first, with the id as a stable tiebreaker
var sortNewestFirst = map[string]int{
	"created_date": -1,
	"objectId":     -1,
}

// MongoPostRepository implements PostRepository on top of the generic
// document repository.
type MongoPostRepository struct {
	db interfaces.Repository
}

// NewMongoPostRepository creates a new MongoDB-backed post repository
func NewMongoPostRepository(db interfaces.Repository) *MongoPostRepository {
	return &MongoPostRepository{db: db}
}

// Create stores a new post
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	result := <-r.db.Save(ctx, postsCollection, post)
	if result.Error != nil {
		return fmt.Errorf("failed to save post: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a post by its unique identifier
func (r *MongoPostRepository) FindByID(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	filter := map[string]interface{}{"objectId": postID}

	result := <-r.db.FindOne(ctx, postsCollection, filter)
	if result.Error() != nil {
		if result.Error() == interfaces.ErrNoDocuments {
			return nil, interfaces.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to find post: %w", result.Error())
	}

	var post models.Post
	if err := result.Decode(&post); err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, interfaces.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}

	return &post, nil
}

// FindByOwner retrieves all posts by a single author, newest first
func (r *MongoPostRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error) {
	filter := map[string]interface{}{"postedBy": ownerID}
	return r.find(ctx, filter)
}

// FindByOwners retrieves all posts by any of the given authors, newest first
func (r *MongoPostRepository) FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]models.Post, error) {
	if len(ownerIDs) == 0 {
		return []models.Post{}, nil
	}
	filter := map[string]interface{}{
		"postedBy": map[string]interface{}{"$in": ownerIDs},
	}
	return r.find(ctx, filter)
}

func (r *MongoPostRepository) find(ctx context.Context, filter map[string]interface{}) ([]models.Post, error) {
	opts := &interfaces.FindOptions{Sort: sortNewestFirst}

	result := <-r.db.Find(ctx, postsCollection, filter, opts)
	if result.Error() != nil {
		return nil, fmt.Errorf("failed to find posts: %w", result.Error())
	}
	defer result.Close()

	posts := []models.Post{}
	for result.Next() {
		var post models.Post
		if err := result.Decode(&post); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// AddLike adds a user to the post's like set with an atomic $addToSet,
// so concurrent likes never lose updates and duplicates cannot appear.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	filter := map[string]interface{}{"objectId": postID}
	update := map[string]interface{}{
		"$addToSet": map[string]interface{}{"likes": userID},
	}
	return r.updateOne(ctx, filter, update)
}

// RemoveLike removes a user from the post's like set with an atomic $pull
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	filter := map[string]interface{}{"objectId": postID}
	update := map[string]interface{}{
		"$pull": map[string]interface{}{"likes": userID},
	}
	return r.updateOne(ctx, filter, update)
}

// AppendReply appends a reply with an atomic $push
func (r *MongoPostRepository) AppendReply(ctx context.Context, postID uuid.UUID, reply *models.Reply) error {
	filter := map[string]interface{}{"objectId": postID}
	update := map[string]interface{}{
		"$push": map[string]interface{}{"replies": reply},
	}
	return r.updateOne(ctx, filter, update)
}

func (r *MongoPostRepository) updateOne(ctx context.Context, filter, update map[string]interface{}) error {
	result := <-r.db.Update(ctx, postsCollection, filter, update, nil)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}

	if matched, ok := result.Result.(int64); ok && matched == 0 {
		return interfaces.ErrNoDocuments
	}

	return nil
}

// Delete removes a post
func (r *MongoPostRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	filter := map[string]interface{}{"objectId": postID}

	result := <-r.db.Delete(ctx, postsCollection, filter)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}

	if deleted, ok := result.Result.(int64); ok && deleted == 0 {
		return interfaces.ErrNoDocuments
	}

	return nil
}
