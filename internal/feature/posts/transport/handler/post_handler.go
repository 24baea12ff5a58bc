// Package handler provides HTTP handlers for the posts feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	g "github.com/maragudk/gomponents"

	commententity "blog_backend/internal/feature/comments/domain/entity"
	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/transport/http/dto"
	"blog_backend/internal/feature/posts/transport/page"
	"blog_backend/internal/feature/posts/usecase"
	"blog_backend/internal/platform/flash"
	"blog_backend/internal/platform/identity"
	"blog_backend/internal/platform/view"
)

const (
	msgLoginToComment = "You need to log in or register to comment."
	msgDuplicateTitle = "A post with this title already exists."
)

// PostUsecase defines the post operations the handler needs.
type PostUsecase interface {
	ListPosts(ctx context.Context) ([]usecase.PostSummary, error)
	GetPost(ctx context.Context, id uint) (*entity.Post, error)
	GetPostDetail(ctx context.Context, id uint) (*usecase.PostDetail, error)
	CreatePost(ctx context.Context, authorID uint, in usecase.PostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, id, editorID uint, in usecase.PostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

// CommentAdder stores new comments.
type CommentAdder interface {
	AddComment(ctx context.Context, postID, authorID uint, text string) (*commententity.Comment, error)
}

// Renderer draws pages inside the site layout.
type Renderer interface {
	Page(c *gin.Context, status int, title string, body ...g.Node)
	Error(c *gin.Context, status int)
}

// PostHandler handles the post list, post pages and the admin editor.
type PostHandler struct {
	posts    PostUsecase
	comments CommentAdder
	flashes  flash.Store
	pages    Renderer
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts PostUsecase, comments CommentAdder, flashes flash.Store, pages Renderer) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, flashes: flashes, pages: pages}
}

// List renders every post.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		h.pages.Error(c, http.StatusInternalServerError)
		return
	}
	h.pages.Page(c, http.StatusOK, "", page.IndexPage(posts, identity.Current(c)))
}

// Show renders a post with its comments.
func (h *PostHandler) Show(c *gin.Context) {
	detail, ok := h.loadDetail(c)
	if !ok {
		return
	}
	h.renderPost(c, http.StatusOK, detail, dto.CommentForm{}, nil)
}

// AddComment stores a comment from the current user and redirects back to the post.
// Anonymous visitors are sent to the login page with a flash.
func (h *PostHandler) AddComment(c *gin.Context) {
	detail, ok := h.loadDetail(c)
	if !ok {
		return
	}

	var form dto.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderPost(c, http.StatusBadRequest, detail, form, view.FieldErrors(err))
		return
	}

	viewer := identity.Current(c)
	if !viewer.IsAuthenticated() {
		if err := h.flashes.Add(c, flash.Info(msgLoginToComment)); err != nil {
			slog.Warn("failed to store flash", "error", err)
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := h.comments.AddComment(c.Request.Context(), detail.Post.ID, viewer.UserID(), form.Comment); err != nil {
		h.fail(c, err, "failed to add comment")
		return
	}
	c.Redirect(http.StatusFound, postPath(detail.Post.ID))
}

// NewForm renders an empty editor.
func (h *PostHandler) NewForm(c *gin.Context) {
	h.pages.Page(c, http.StatusOK, "New Post", page.EditorPage(0, dto.PostForm{}, nil))
}

// Create publishes a post by the current user.
func (h *PostHandler) Create(c *gin.Context) {
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.Page(c, http.StatusBadRequest, "New Post", page.EditorPage(0, form, view.FieldErrors(err)))
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), identity.Current(c).UserID(), form.Input())
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateTitle) {
			h.pages.Page(c, http.StatusBadRequest, "New Post", page.EditorPage(0, form, map[string]string{"Title": msgDuplicateTitle}))
			return
		}
		h.fail(c, err, "failed to create post")
		return
	}
	slog.Info("post created", "post_id", post.ID, "user_id", post.AuthorID)
	c.Redirect(http.StatusFound, "/")
}

// EditForm renders the editor pre-filled from the post.
func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	post, err := h.posts.GetPost(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load post")
		return
	}
	h.pages.Page(c, http.StatusOK, "Edit Post", page.EditorPage(id, dto.PostFormFrom(post), nil))
}

// Update saves the editor and makes the current user the post's author.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	if _, err := h.posts.GetPost(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to load post")
		return
	}

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.Page(c, http.StatusBadRequest, "Edit Post", page.EditorPage(id, form, view.FieldErrors(err)))
		return
	}

	if _, err := h.posts.UpdatePost(c.Request.Context(), id, identity.Current(c).UserID(), form.Input()); err != nil {
		if errors.Is(err, usecase.ErrDuplicateTitle) {
			h.pages.Page(c, http.StatusBadRequest, "Edit Post", page.EditorPage(id, form, map[string]string{"Title": msgDuplicateTitle}))
			return
		}
		h.fail(c, err, "failed to update post")
		return
	}
	slog.Info("post updated", "post_id", id, "user_id", identity.Current(c).UserID())
	c.Redirect(http.StatusFound, postPath(id))
}

// Delete removes a post and its comments.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	if err := h.posts.DeletePost(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete post")
		return
	}
	slog.Info("post deleted", "post_id", id, "user_id", identity.Current(c).UserID())
	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) loadDetail(c *gin.Context) (*usecase.PostDetail, bool) {
	id, ok := h.postID(c)
	if !ok {
		return nil, false
	}
	detail, err := h.posts.GetPostDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load post")
		return nil, false
	}
	return detail, true
}

func (h *PostHandler) renderPost(c *gin.Context, status int, detail *usecase.PostDetail, form dto.CommentForm, errs map[string]string) {
	h.pages.Page(c, status, detail.Post.Title, page.PostPage(detail, identity.Current(c), form, errs))
}

// postID parses :post_id, rendering 404 when it is not a positive integer.
func (h *PostHandler) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || id == 0 {
		h.pages.Error(c, http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// fail maps a missing post to 404 and anything else to 500.
func (h *PostHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, usecase.ErrPostNotFound) {
		h.pages.Error(c, http.StatusNotFound)
		return
	}
	slog.Error(msg, "error", err)
	h.pages.Error(c, http.StatusInternalServerError)
}

func postPath(id uint) string {
	return fmt.Sprintf("/post/%d", id)
}
