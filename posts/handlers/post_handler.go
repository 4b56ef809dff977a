package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/internal/types"
	"github.com/waveline-social/waveline/posts/errors"
	"github.com/waveline-social/waveline/posts/models"
	"github.com/waveline-social/waveline/posts/services"
	"github.com/waveline-social/waveline/posts/validation"
)

// PostHandler handles all post-related HTTP requests
type PostHandler struct {
	postService services.Service
}

// NewPostHandler creates a new PostHandler with injected dependencies
func NewPostHandler(postService services.Service) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost handles post creation
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c)
	}

	if err := validation.ValidateCreatePostRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Invalid user context")
	}

	post, err := h.postService.CreatePost(c.Context(), user, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(post)
}

// DeletePost handles deleting a post owned by the authenticated user
// Note: UUID validation is handled by constraints.RequireUUID middleware,
// the parse here is defensive in case the route is wired without it.
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(errors.ErrorResponse{Error: "Post not found"})
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Invalid user context")
	}

	if err := h.postService.DeletePost(c.Context(), user, postID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(models.MessageResponse{Message: "Post deleted successfully"})
}

// GetPost handles retrieving a single post
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(errors.ErrorResponse{Error: "Post not found"})
	}

	post, err := h.postService.GetPost(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(post)
}

// GetFeed handles retrieving the authenticated user's home feed
func (h *PostHandler) GetFeed(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Invalid user context")
	}

	feed, err := h.postService.GetFeed(c.Context(), user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(feed)
}

// GetUserPosts handles retrieving all posts by the named author
func (h *PostHandler) GetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return errors.HandleValidationError(c, errors.ErrInvalidPostData)
	}

	posts, err := h.postService.GetPostsByUsername(c.Context(), username)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(posts)
}

// ToggleLike handles liking and unliking a post
func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(errors.ErrorResponse{Error: "Post not found"})
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Invalid user context")
	}

	liked, err := h.postService.ToggleLike(c.Context(), user, postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Post unliked successfully"
	if liked {
		message = "Post liked successfully"
	}

	return c.JSON(models.MessageResponse{Message: message})
}

// ReplyToPost handles appending a reply to a post
func (h *PostHandler) ReplyToPost(c *fiber.Ctx) error {
	var req models.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c)
	}

	if err := validation.ValidateReplyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(errors.ErrorResponse{Error: "Post not found"})
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Invalid user context")
	}

	reply, err := h.postService.AddReply(c.Context(), user, postID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(reply)
}
