// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	platformconfig "github.com/waveline-social/waveline/internal/platform/config"
)

// s3Provider implements BlobProvider for any S3-compatible object store
// (AWS S3, Cloudflare R2, MinIO) using the AWS S3 SDK
type s3Provider struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

// NewS3Provider creates a new S3 provider from configuration
func NewS3Provider(cfg *platformconfig.StorageConfig) (BlobProvider, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY are required")
	}
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET_NAME is required")
	}

	// Build custom endpoint for R2-style stores
	// Format: https://<account-id>.r2.cloudflarestorage.com
	endpoint := cfg.Endpoint
	if endpoint == "" && cfg.AccountID != "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}
	if endpoint == "" {
		return nil, fmt.Errorf("STORAGE_ENDPOINT or STORAGE_ACCOUNT_ID is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Custom endpoints require path-style addressing
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &s3Provider{
		s3Client:  s3Client,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
	}, nil
}

// Upload stores the object and returns its public URL. When a public CDN
// base URL is configured the returned URL is <publicURL>/<key>; otherwise
// the bucket endpoint URL is used.
func (p *s3Provider) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	if p.publicURL != "" {
		publicBase := strings.TrimSuffix(p.publicURL, "/")
		return fmt.Sprintf("%s/%s", publicBase, key), nil
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, key), nil
}

// Delete deletes an object from the store
func (p *s3Provider) Delete(ctx context.Context, key string) error {
	_, err := p.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}
