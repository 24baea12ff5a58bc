// Package adapters provides repository implementations for the comments feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog_backend/internal/feature/comments/domain/entity"
	"blog_backend/internal/feature/comments/usecase"
)

// commentGorm is the GORM implementation of the CommentRepository interface.
type commentGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure commentGorm implements CommentRepository.
var _ usecase.CommentRepository = (*commentGorm)(nil)

// NewCommentRepository creates a new commentGorm backed by the given connection.
func NewCommentRepository(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

// Create inserts a comment and sets its ID.
func (r *commentGorm) Create(ctx context.Context, c *entity.Comment) error {
	if c == nil {
		return errors.New("comment is nil")
	}
	m := CommentModelFromEntity(c)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

// FindByID retrieves a comment by ID.
// If no comment exists, usecase.ErrCommentNotFound is returned.
func (r *commentGorm) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByPost returns the comments on a post ordered by ID.
func (r *commentGorm) FindByPost(ctx context.Context, postID uint) ([]entity.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, *models[i].ToEntity())
	}
	return comments, nil
}

// FindFirstByAuthor returns the oldest comment written by authorID.
// If the author has no comments, usecase.ErrCommentNotFound is returned.
func (r *commentGorm) FindFirstByAuthor(ctx context.Context, authorID uint) (*entity.Comment, error) {
	return r.first(r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id ASC"))
}

func (r *commentGorm) first(q *gorm.DB) (*entity.Comment, error) {
	var m CommentModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Delete removes a comment.
// If no comment exists, usecase.ErrCommentNotFound is returned.
func (r *commentGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&CommentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}
