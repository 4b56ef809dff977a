// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package interfaces

import (
	"context"
	"errors"
)

// ErrNoDocuments is returned by single-document lookups when nothing matches.
// Backend-specific "not found" errors are normalized to this value.
var ErrNoDocuments = errors.New("no documents in result")

// Repository defines the interface for document database operations
type Repository interface {
	// Basic CRUD operations
	Save(ctx context.Context, collectionName string, data interface{}) <-chan RepositoryResult
	Find(ctx context.Context, collectionName string, filter interface{}, opts *FindOptions) <-chan QueryResult
	FindOne(ctx context.Context, collectionName string, filter interface{}) <-chan SingleResult
	Update(ctx context.Context, collectionName string, filter interface{}, data interface{}, opts *UpdateOptions) <-chan RepositoryResult
	Delete(ctx context.Context, collectionName string, filter interface{}) <-chan RepositoryResult

	// Index operations
	CreateIndex(ctx context.Context, collectionName string, indexes map[string]interface{}) <-chan error

	// Connection management
	Ping(ctx context.Context) <-chan error
	Close() error
}

// FindOptions represents options for find operations
type FindOptions struct {
	Limit  *int64
	Skip   *int64
	Sort   map[string]int
	Select map[string]int
}

// UpdateOptions represents options for update operations
type UpdateOptions struct {
	Upsert *bool
}

// RepositoryResult represents the result of a repository operation
type RepositoryResult struct {
	Result interface{}
	Error  error
}

// QueryResult represents a query result cursor
type QueryResult interface {
	Next() bool
	Decode(v interface{}) error
	Close()
	Error() error
}

// SingleResult represents a single document result
type SingleResult interface {
	Decode(v interface{}) error
	Error() error
	NoResult() bool
}
