package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/posts/models"
	userModels "github.com/waveline-social/waveline/users/models"
)

// mockPostRepository is a func-field mock of repository.PostRepository
type mockPostRepository struct {
	createFn       func(ctx context.Context, post *models.Post) error
	findByIDFn     func(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	findByOwnerFn  func(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error)
	findByOwnersFn func(ctx context.Context, ownerIDs []uuid.UUID) ([]models.Post, error)
	addLikeFn      func(ctx context.Context, postID, userID uuid.UUID) error
	removeLikeFn   func(ctx context.Context, postID, userID uuid.UUID) error
	appendReplyFn  func(ctx context.Context, postID uuid.UUID, reply *models.Reply) error
	deleteFn       func(ctx context.Context, postID uuid.UUID) error
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post) error {
	return m.createFn(ctx, post)
}

func (m *mockPostRepository) FindByID(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	return m.findByIDFn(ctx, postID)
}

func (m *mockPostRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error) {
	return m.findByOwnerFn(ctx, ownerID)
}

func (m *mockPostRepository) FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]models.Post, error) {
	return m.findByOwnersFn(ctx, ownerIDs)
}

func (m *mockPostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	return m.addLikeFn(ctx, postID, userID)
}

func (m *mockPostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	return m.removeLikeFn(ctx, postID, userID)
}

func (m *mockPostRepository) AppendReply(ctx context.Context, postID uuid.UUID, reply *models.Reply) error {
	return m.appendReplyFn(ctx, postID, reply)
}

func (m *mockPostRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	return m.deleteFn(ctx, postID)
}

// mockUserRepository is a func-field mock of repository.UserRepository
type mockUserRepository struct {
	findByIDFn       func(ctx context.Context, userID uuid.UUID) (*userModels.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*userModels.User, error)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uuid.UUID) (*userModels.User, error) {
	return m.findByIDFn(ctx, userID)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*userModels.User, error) {
	return m.findByUsernameFn(ctx, username)
}

// mockMediaService is a func-field mock of services.MediaService
type mockMediaService struct {
	uploadImageFn func(ctx context.Context, rawImage string) (string, error)
	deleteByURLFn func(ctx context.Context, url string) error
}

func (m *mockMediaService) UploadImage(ctx context.Context, rawImage string) (string, error) {
	return m.uploadImageFn(ctx, rawImage)
}

func (m *mockMediaService) DeleteByURL(ctx context.Context, url string) error {
	return m.deleteByURLFn(ctx, url)
}
