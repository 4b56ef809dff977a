package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Post service specific errors
var (
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostUnauthorized   = errors.New("unauthorized access to post")
	ErrImageUploadFailed  = errors.New("image upload failed")
	ErrInvalidPostData    = errors.New("invalid post data")
	ErrInvalidUserContext = errors.New("invalid user context")

	// Database and system errors
	ErrDatabaseOperation = errors.New("database operation failed")
)

// ErrorResponse is the wire format for every error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleServiceError maps service errors to HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "Post not found",
		})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "User not found",
		})
	case errors.Is(err, ErrPostUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error: err.Error(),
		})
	case errors.Is(err, ErrImageUploadFailed):
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Image upload failed",
		})
	case errors.Is(err, ErrInvalidPostData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}
}

// HandleValidationError returns a 400 response with the validation message
func HandleValidationError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: err.Error(),
	})
}

// HandleInvalidRequestError returns a 400 response for malformed request bodies
func HandleInvalidRequestError(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: "Invalid request body",
	})
}

// HandleUnauthorizedError returns a 401 response with the given message
func HandleUnauthorizedError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
	})
}
