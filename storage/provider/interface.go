// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"context"
)

// BlobProvider defines the interface for blob storage providers
// This interface is provider-agnostic, allowing easy switching between
// AWS S3, Cloudflare R2, Google Cloud Storage, etc.
type BlobProvider interface {
	// Upload stores the object under the given key and returns its public URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete physically deletes the object from the storage provider
	Delete(ctx context.Context, key string) error
}
