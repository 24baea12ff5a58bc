// Package identity resolves who is making a request from the session cookie.
package identity

import (
	"blog_backend/internal/feature/auth/domain/entity"

	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key holding the request's Identity.
const ContextKey = "identity"

// Identity is the requester: an authenticated user or anonymous (nil User).
type Identity struct {
	User  *entity.User
	Admin bool
}

// Anonymous is the identity of a request without a valid session.
var Anonymous = Identity{}

// IsAuthenticated reports whether the request carries a resolved user.
func (i Identity) IsAuthenticated() bool {
	return i.User != nil
}

// UserID returns the user's id, or 0 when anonymous.
func (i Identity) UserID() uint {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

// Current returns the identity stored by Middleware, Anonymous if none.
func Current(c *gin.Context) Identity {
	v, ok := c.Get(ContextKey)
	if !ok {
		return Anonymous
	}
	id, ok := v.(Identity)
	if !ok {
		return Anonymous
	}
	return id
}

// Set stores id on the context.
func Set(c *gin.Context, id Identity) {
	c.Set(ContextKey, id)
}
