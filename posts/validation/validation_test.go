package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waveline-social/waveline/posts/models"
)

func TestValidateCreatePostRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreatePostRequest
		wantErr error
	}{
		{
			name: "valid request",
			req:  models.CreatePostRequest{PostedBy: "0f8fad5b-d9cb-469f-a165-70867728950e", Text: "hello"},
		},
		{
			name:    "missing postedBy",
			req:     models.CreatePostRequest{Text: "hello"},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "missing text",
			req:     models.CreatePostRequest{PostedBy: "0f8fad5b-d9cb-469f-a165-70867728950e"},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name: "text at limit",
			req:  models.CreatePostRequest{PostedBy: "0f8fad5b-d9cb-469f-a165-70867728950e", Text: strings.Repeat("a", MaxTextLength)},
		},
		{
			name:    "text over limit",
			req:     models.CreatePostRequest{PostedBy: "0f8fad5b-d9cb-469f-a165-70867728950e", Text: strings.Repeat("a", MaxTextLength+1)},
			wantErr: ErrTextTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreatePostRequest(&tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateReplyRequest(t *testing.T) {
	assert.NoError(t, ValidateReplyRequest(&models.ReplyRequest{Text: "nice"}))
	assert.ErrorIs(t, ValidateReplyRequest(&models.ReplyRequest{}), ErrMissingText)
	assert.ErrorIs(t, ValidateReplyRequest(&models.ReplyRequest{Text: strings.Repeat("x", MaxTextLength+1)}), ErrTextTooLong)
}
