// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import "context"

// MediaService handles uploading and removing user media on the
// configured blob storage provider.
type MediaService interface {
	// UploadImage decodes a base64 or data-URI encoded image, stores it
	// under a fresh key and returns the public URL
	UploadImage(ctx context.Context, rawImage string) (string, error)

	// DeleteByURL removes the object a public media URL points at
	DeleteByURL(ctx context.Context, url string) error
}
