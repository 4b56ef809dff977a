package types

import (
	uuid "github.com/gofrs/uuid"
)

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUID           = "uid"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// UserCtxName is the fiber Locals key under which the authenticated
// user context is stored by the auth middleware.
const UserCtxName = "user"

// Common Values
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserContext carries the authenticated identity extracted from the JWT.
// It is the only identity information the posts service ever sees; the
// account store and session handling live upstream.
type UserContext struct {
	UserID      uuid.UUID `json:"uid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Avatar      string    `json:"avatar"`
	Role        string    `json:"role"`
}
