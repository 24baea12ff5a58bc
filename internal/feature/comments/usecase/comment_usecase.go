package usecase

import (
	"context"
	"fmt"

	"blog_backend/internal/feature/comments/domain/entity"
	postentity "blog_backend/internal/feature/posts/domain/entity"
)

// CommentRepository abstracts the persistence layer for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	// FindByID returns ErrCommentNotFound if the comment does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	FindByPost(ctx context.Context, postID uint) ([]entity.Comment, error)
	// FindFirstByAuthor returns the lowest-id comment written by authorID,
	// or ErrCommentNotFound if there is none.
	FindFirstByAuthor(ctx context.Context, authorID uint) (*entity.Comment, error)
	// Delete returns ErrCommentNotFound if nothing was removed.
	Delete(ctx context.Context, id uint) error
}

// PostFinder confirms a post exists before it is commented on.
type PostFinder interface {
	FindByID(ctx context.Context, id uint) (*postentity.Post, error)
}

type commentUsecase struct {
	comments CommentRepository
	posts    PostFinder
}

// NewCommentUsecase creates a new commentUsecase.
func NewCommentUsecase(comments CommentRepository, posts PostFinder) *commentUsecase {
	return &commentUsecase{comments: comments, posts: posts}
}

// AddComment stores a comment by authorID on postID.
// The post lookup error, such as the posts package's not-found error, is returned unchanged.
func (u *commentUsecase) AddComment(ctx context.Context, postID, authorID uint, text string) (*entity.Comment, error) {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{Text: text, AuthorID: authorID, PostID: postID}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return comment, nil
}

// GetComment returns a single comment.
func (u *commentUsecase) GetComment(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.comments.FindByID(ctx, id)
}

// FindFirstByAuthor returns some comment written by authorID.
func (u *commentUsecase) FindFirstByAuthor(ctx context.Context, authorID uint) (*entity.Comment, error) {
	return u.comments.FindFirstByAuthor(ctx, authorID)
}

// DeleteComment removes a comment.
func (u *commentUsecase) DeleteComment(ctx context.Context, id uint) error {
	return u.comments.Delete(ctx, id)
}
