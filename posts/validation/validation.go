package validation

import (
	"errors"
	"strings"

	"github.com/waveline-social/waveline/posts/models"
)

// MaxTextLength is the maximum number of characters a post or reply may carry
const MaxTextLength = 800

var (
	ErrMissingRequiredFields = errors.New("PostedBy and text fields are required")
	ErrMissingText           = errors.New("Text field is required")
	ErrTextTooLong           = errors.New("Text must be less than 800 characters")
)

// ValidateCreatePostRequest validates a create post request body
func ValidateCreatePostRequest(req *models.CreatePostRequest) error {
	if strings.TrimSpace(req.PostedBy) == "" || req.Text == "" {
		return ErrMissingRequiredFields
	}
	if len([]rune(req.Text)) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

// ValidateReplyRequest validates a reply request body
func ValidateReplyRequest(req *models.ReplyRequest) error {
	if req.Text == "" {
		return ErrMissingText
	}
	if len([]rune(req.Text)) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}
