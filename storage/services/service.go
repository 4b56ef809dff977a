// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	uuid "github.com/gofrs/uuid"

	"github.com/waveline-social/waveline/internal/utils"
	"github.com/waveline-social/waveline/storage/provider"
)

var (
	// ErrInvalidImage is returned when the payload is not a decodable image
	ErrInvalidImage = errors.New("invalid image payload")
	// ErrUploadFailed is returned when the storage provider rejects the upload
	ErrUploadFailed = errors.New("image upload failed")
)

// Media size cap, matching the largest payload the API accepts
const maxImageBytes = 10 << 20

// mediaService implements MediaService on top of a BlobProvider
type mediaService struct {
	provider provider.BlobProvider
}

// NewMediaService creates a new media service
func NewMediaService(p provider.BlobProvider) MediaService {
	return &mediaService{provider: p}
}

// UploadImage decodes the raw payload and stores it under a fresh UUID key.
// Keys carry no file extension so the public URL's last path segment is the
// key itself, which keeps URL-to-key derivation lossless.
func (s *mediaService) UploadImage(ctx context.Context, rawImage string) (string, error) {
	data, contentType, err := decodeImage(rawImage)
	if err != nil {
		return "", err
	}

	if len(data) == 0 || len(data) > maxImageBytes {
		return "", ErrInvalidImage
	}

	key, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate media key: %w", err)
	}

	url, err := s.provider.Upload(ctx, key.String(), data, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return url, nil
}

// DeleteByURL removes the object a public media URL points at
func (s *mediaService) DeleteByURL(ctx context.Context, url string) error {
	key := utils.MediaKeyFromURL(url)
	if key == "" {
		return ErrInvalidImage
	}
	return s.provider.Delete(ctx, key)
}

// decodeImage accepts either a bare base64 string or a data URI
// ("data:image/png;base64,...") and returns the raw bytes plus the
// detected content type.
func decodeImage(rawImage string) ([]byte, string, error) {
	payload := rawImage
	declaredType := ""

	if strings.HasPrefix(rawImage, "data:") {
		idx := strings.Index(rawImage, ",")
		if idx < 0 {
			return nil, "", ErrInvalidImage
		}
		meta := rawImage[len("data:"):idx]
		payload = rawImage[idx+1:]

		if !strings.HasSuffix(meta, ";base64") {
			return nil, "", ErrInvalidImage
		}
		declaredType = strings.TrimSuffix(meta, ";base64")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidImage
	}

	contentType := declaredType
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", ErrInvalidImage
	}

	return data, contentType, nil
}
