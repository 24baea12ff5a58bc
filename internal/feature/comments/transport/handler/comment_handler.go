// Package handler provides HTTP handlers for the comments feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/comments/usecase"
	"blog_backend/internal/platform/identity"
)

// CommentDeleter removes comments.
type CommentDeleter interface {
	DeleteComment(ctx context.Context, id uint) error
}

// ErrorPage renders an error page and aborts the request.
type ErrorPage func(c *gin.Context, status int)

// CommentHandler handles comment removal. Ownership is checked by middleware.
type CommentHandler struct {
	comments CommentDeleter
	errPage  ErrorPage
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments CommentDeleter, errPage ErrorPage) *CommentHandler {
	return &CommentHandler{comments: comments, errPage: errPage}
}

// Delete removes :comment_id and redirects to the post it belonged to.
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, perr := strconv.ParseUint(c.Param("post_id"), 10, 64)
	commentID, cerr := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if perr != nil || cerr != nil {
		h.errPage(c, http.StatusNotFound)
		return
	}

	if err := h.comments.DeleteComment(c.Request.Context(), uint(commentID)); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			h.errPage(c, http.StatusNotFound)
			return
		}
		slog.Error("failed to delete comment", "error", err, "comment_id", commentID)
		h.errPage(c, http.StatusInternalServerError)
		return
	}

	slog.Info("comment deleted", "comment_id", commentID, "post_id", postID, "user_id", identity.Current(c).UserID())
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
}
