package services

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/internal/cache"
	"github.com/waveline-social/waveline/internal/database/interfaces"
	"github.com/waveline-social/waveline/internal/pkg/log"
	"github.com/waveline-social/waveline/internal/types"
	postErrors "github.com/waveline-social/waveline/posts/errors"
	"github.com/waveline-social/waveline/posts/models"
	"github.com/waveline-social/waveline/posts/repository"
	mediaServices "github.com/waveline-social/waveline/storage/services"
	userRepository "github.com/waveline-social/waveline/users/repository"
)

const (
	feedCacheKeyPrefix   = "posts:feed:"
	authorCacheKeyPrefix = "posts:author:"
	listCachePattern     = "posts:*"
	listCacheTTL         = 2 * time.Minute
)

// postService implements Service
type postService struct {
	posts repository.PostRepository
	users userRepository.UserRepository
	media mediaServices.MediaService
	cache *cache.GenericCacheService
}

// NewPostService creates a new post service. media and cacheService may be
// nil, in which case image handling is rejected and caching is skipped.
func NewPostService(
	posts repository.PostRepository,
	users userRepository.UserRepository,
	media mediaServices.MediaService,
	cacheService *cache.GenericCacheService,
) Service {
	return &postService{
		posts: posts,
		users: users,
		media: media,
		cache: cacheService,
	}
}

// CreatePost creates a new post for the authenticated user
func (s *postService) CreatePost(ctx context.Context, user types.UserContext, req *models.CreatePostRequest) (*models.Post, error) {
	postedBy, err := uuid.FromString(req.PostedBy)
	if err != nil {
		return nil, fmt.Errorf("%w: postedBy is not a valid id", postErrors.ErrInvalidPostData)
	}

	author, err := s.users.FindByID(ctx, postedBy)
	if err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, postErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	if author.ObjectId != user.UserID {
		return nil, fmt.Errorf("%w: unauthorized to create post", postErrors.ErrPostUnauthorized)
	}

	imageURL := ""
	if req.Img != "" {
		if s.media == nil {
			return nil, postErrors.ErrImageUploadFailed
		}
		imageURL, err = s.media.UploadImage(ctx, req.Img)
		if err != nil {
			log.ErrorWithContext(ctx, "image upload failed for user %s: %v", user.UserID, err)
			return nil, postErrors.ErrImageUploadFailed
		}
	}

	postID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate post id: %w", err)
	}

	now := time.Now()
	post := &models.Post{
		ObjectId:    postID,
		PostedBy:    postedBy,
		Text:        req.Text,
		Image:       imageURL,
		Likes:       []uuid.UUID{},
		Replies:     []models.Reply{},
		CreatedDate: now.Unix(),
		CreatedAt:   now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	s.cache.InvalidatePattern(ctx, listCachePattern)

	return post, nil
}

// DeletePost deletes a post owned by the authenticated user. Media removal
// is best effort: a storage failure is logged and the post is still deleted.
func (s *postService) DeletePost(ctx context.Context, user types.UserContext, postID uuid.UUID) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.PostedBy != user.UserID {
		return fmt.Errorf("%w: unauthorized to delete post", postErrors.ErrPostUnauthorized)
	}

	if post.Image != "" && s.media != nil {
		if err := s.media.DeleteByURL(ctx, post.Image); err != nil {
			log.WarnWithContext(ctx, "failed to delete media for post %s: %v", postID, err)
		}
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		if err == interfaces.ErrNoDocuments {
			return postErrors.ErrPostNotFound
		}
		return fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	s.cache.InvalidatePattern(ctx, listCachePattern)

	return nil
}

// GetPost retrieves a single post by id
func (s *postService) GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	return s.findPost(ctx, postID)
}

// GetFeed retrieves posts authored by users the given user follows
func (s *postService) GetFeed(ctx context.Context, userID uuid.UUID) ([]models.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, postErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	cacheKey := feedCacheKeyPrefix + userID.String()
	var cached []models.Post
	if err := s.cache.GetCached(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	posts, err := s.posts.FindByOwners(ctx, user.FollowingIds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	if err := s.cache.CacheData(ctx, cacheKey, posts, listCacheTTL); err != nil && err != cache.ErrCacheDisabled {
		log.WarnWithContext(ctx, "failed to cache feed for user %s: %v", userID, err)
	}

	return posts, nil
}

// GetPostsByUsername retrieves all posts by the named author
func (s *postService) GetPostsByUsername(ctx context.Context, username string) ([]models.Post, error) {
	author, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, postErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	cacheKey := authorCacheKeyPrefix + author.ObjectId.String()
	var cached []models.Post
	if err := s.cache.GetCached(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	posts, err := s.posts.FindByOwner(ctx, author.ObjectId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	if err := s.cache.CacheData(ctx, cacheKey, posts, listCacheTTL); err != nil && err != cache.ErrCacheDisabled {
		log.WarnWithContext(ctx, "failed to cache posts for author %s: %v", username, err)
	}

	return posts, nil
}

// ToggleLike flips the user's like on a post. The membership check decides
// the direction and the store applies it with an atomic set update, so two
// racing likes from the same user still end as a single entry.
func (s *postService) ToggleLike(ctx context.Context, user types.UserContext, postID uuid.UUID) (bool, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return false, err
	}

	liked := false
	for _, id := range post.Likes {
		if id == user.UserID {
			liked = true
			break
		}
	}

	if liked {
		err = s.posts.RemoveLike(ctx, postID, user.UserID)
	} else {
		err = s.posts.AddLike(ctx, postID, user.UserID)
	}
	if err != nil {
		if err == interfaces.ErrNoDocuments {
			return false, postErrors.ErrPostNotFound
		}
		return false, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	s.cache.InvalidatePattern(ctx, listCachePattern)

	return !liked, nil
}

// AddReply appends a reply by the authenticated user to a post
func (s *postService) AddReply(ctx context.Context, user types.UserContext, postID uuid.UUID, req *models.ReplyRequest) (*models.Reply, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	reply := &models.Reply{
		UserId:         user.UserID,
		Text:           req.Text,
		UserProfilePic: user.Avatar,
		Username:       user.Username,
		CreatedDate:    time.Now().Unix(),
	}

	if err := s.posts.AppendReply(ctx, postID, reply); err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, postErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}

	s.cache.InvalidatePattern(ctx, listCachePattern)

	return reply, nil
}

func (s *postService) findPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if err == interfaces.ErrNoDocuments {
			return nil, postErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", postErrors.ErrDatabaseOperation, err)
	}
	return post, nil
}
