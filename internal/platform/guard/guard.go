// Package guard holds the authorization middleware that gates mutating routes.
package guard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	commententity "blog_backend/internal/feature/comments/domain/entity"
	commentusecase "blog_backend/internal/feature/comments/usecase"
	"blog_backend/internal/platform/flash"
	"blog_backend/internal/platform/identity"

	"github.com/gin-gonic/gin"
)

// LoginPath is where anonymous visitors are sent.
const LoginPath = "/login"

// LoginMessage is flashed when an anonymous visitor hits a protected route.
const LoginMessage = "You need to login or register to continue."

// Reject renders an error page for status. The guard aborts the chain afterwards.
type Reject func(c *gin.Context, status int)

// CommentLookup finds comments for ownership checks.
type CommentLookup interface {
	GetComment(ctx context.Context, id uint) (*commententity.Comment, error)
	FindFirstByAuthor(ctx context.Context, authorID uint) (*commententity.Comment, error)
}

// LoginRequired redirects anonymous visitors to the login page with a flash.
func LoginRequired(flashes flash.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity.Current(c).IsAuthenticated() {
			c.Next()
			return
		}
		if err := flashes.Add(c, flash.Info(LoginMessage)); err != nil {
			slog.Warn("failed to store flash", "error", err)
		}
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}

// AdminOnly rejects every identity whose id is not adminID with 403.
func AdminOnly(adminID uint, reject Reject) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := identity.Current(c)
		if !id.IsAuthenticated() || id.UserID() != adminID {
			deny(c, reject, http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// CommentOwnerOnly admits the request when the current user owns a comment.
//
// By default it only checks that the user has written some comment, whichever
// one the URL names. With strict set, it requires the user to be the author of
// the comment in the :comment_id path parameter.
func CommentOwnerOnly(comments CommentLookup, strict bool, reject Reject) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := identity.Current(c)
		if !id.IsAuthenticated() {
			deny(c, reject, http.StatusForbidden)
			return
		}

		var (
			comment *commententity.Comment
			err     error
		)
		if strict {
			commentID, perr := strconv.ParseUint(c.Param("comment_id"), 10, 64)
			if perr != nil {
				deny(c, reject, http.StatusNotFound)
				return
			}
			comment, err = comments.GetComment(c.Request.Context(), uint(commentID))
		} else {
			comment, err = comments.FindFirstByAuthor(c.Request.Context(), id.UserID())
		}

		if err != nil {
			if errors.Is(err, commentusecase.ErrCommentNotFound) {
				status := http.StatusForbidden
				if strict {
					status = http.StatusNotFound
				}
				deny(c, reject, status)
				return
			}
			slog.Error("failed to look up comment owner", "user_id", id.UserID(), "error", err)
			deny(c, reject, http.StatusInternalServerError)
			return
		}

		if comment.AuthorID != id.UserID() {
			deny(c, reject, http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func deny(c *gin.Context, reject Reject, status int) {
	if reject != nil {
		reject(c, status)
	} else {
		c.Status(status)
	}
	c.Abort()
}
