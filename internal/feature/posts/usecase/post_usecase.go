package usecase

import (
	"context"
	"fmt"
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	commententity "blog_backend/internal/feature/comments/domain/entity"
	"blog_backend/internal/feature/posts/domain/entity"
)

// DateLayout is how a post's publication date is displayed and stored.
const DateLayout = "January 02, 2006"

// PostRepository abstracts the persistence layer for posts.
type PostRepository interface {
	// Create persists a new post. It returns ErrDuplicateTitle if the title is taken.
	Create(ctx context.Context, post *entity.Post) error
	// FindByID returns ErrPostNotFound if the post does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)
	// FindAll returns every post in insertion order.
	FindAll(ctx context.Context) ([]entity.Post, error)
	// Update overwrites the editable fields and author of an existing post.
	Update(ctx context.Context, post *entity.Post) error
	// Delete removes a post together with its comments.
	Delete(ctx context.Context, id uint) error
}

// AuthorReader resolves author names for display.
type AuthorReader interface {
	FindByIDs(ctx context.Context, ids []uint) (map[uint]authentity.User, error)
}

// CommentReader lists the comments under a post.
type CommentReader interface {
	FindByPost(ctx context.Context, postID uint) ([]commententity.Comment, error)
}

// PostInput carries the editable fields of a post.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// PostSummary is a post with its author's display name.
type PostSummary struct {
	Post       entity.Post
	AuthorName string
}

// CommentView is a comment with its author's display name.
type CommentView struct {
	Comment    commententity.Comment
	AuthorName string
}

// PostDetail is everything the post page shows.
type PostDetail struct {
	Post       entity.Post
	AuthorName string
	Comments   []CommentView
}

type postUsecase struct {
	posts    PostRepository
	authors  AuthorReader
	comments CommentReader
	now      func() time.Time
}

// NewPostUsecase creates a new postUsecase.
func NewPostUsecase(posts PostRepository, authors AuthorReader, comments CommentReader) *postUsecase {
	return &postUsecase{
		posts:    posts,
		authors:  authors,
		comments: comments,
		now:      time.Now,
	}
}

// ListPosts returns all posts with their author names.
func (u *postUsecase) ListPosts(ctx context.Context) ([]PostSummary, error) {
	posts, err := u.posts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	names, err := u.authorNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{Post: p, AuthorName: names[p.AuthorID]})
	}
	return out, nil
}

// GetPost returns a single post.
func (u *postUsecase) GetPost(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// GetPostDetail returns a post with its author and comments.
func (u *postUsecase) GetPostDetail(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := u.comments.FindByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := []uint{post.AuthorID}
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	names, err := u.authorNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	detail := &PostDetail{
		Post:       *post,
		AuthorName: names[post.AuthorID],
		Comments:   make([]CommentView, 0, len(comments)),
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, CommentView{Comment: c, AuthorName: names[c.AuthorID]})
	}
	return detail, nil
}

// CreatePost publishes a post by authorID dated today.
func (u *postUsecase) CreatePost(ctx context.Context, authorID uint, in PostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImgURL:   in.ImgURL,
		Date:     u.now().Format(DateLayout),
		AuthorID: authorID,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites the post's fields and makes editorID its author.
// The original date is kept.
func (u *postUsecase) UpdatePost(ctx context.Context, id, editorID uint, in PostInput) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.Body = in.Body
	post.ImgURL = in.ImgURL
	post.AuthorID = editorID

	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its comments.
func (u *postUsecase) DeletePost(ctx context.Context, id uint) error {
	return u.posts.Delete(ctx, id)
}

func (u *postUsecase) authorNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	users, err := u.authors.FindByIDs(ctx, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}
	for id, user := range users {
		names[id] = user.Name
	}
	return names, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
