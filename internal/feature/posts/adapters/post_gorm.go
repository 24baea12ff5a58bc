// Package adapters provides repository implementations for the posts feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
	"blog_backend/internal/platform/db"
)

// deleteCommentsSQL clears a post's comments before the post itself is removed.
const deleteCommentsSQL = "DELETE FROM comments WHERE post_id = ?"

// postGorm is the GORM implementation of the PostRepository interface.
type postGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure postGorm implements PostRepository.
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostRepository creates a new postGorm backed by the given connection.
func NewPostRepository(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create inserts a post and sets its ID.
// A taken title yields usecase.ErrDuplicateTitle.
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	if p == nil {
		return errors.New("post is nil")
	}
	m := PostModelFromEntity(p)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateTitle
		}
		return err
	}
	p.ID = m.ID
	return nil
}

// FindByID retrieves a post by ID.
// If no post exists, usecase.ErrPostNotFound is returned.
func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var m PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// FindAll returns every post ordered by ID.
func (r *postGorm) FindAll(ctx context.Context) ([]entity.Post, error) {
	return r.find(r.db.WithContext(ctx).Order("id ASC"))
}

// FindByAuthor returns the posts written by authorID ordered by ID.
func (r *postGorm) FindByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error) {
	return r.find(r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id ASC"))
}

func (r *postGorm) find(q *gorm.DB) ([]entity.Post, error) {
	var models []PostModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	posts := make([]entity.Post, 0, len(models))
	for i := range models {
		posts = append(posts, *models[i].ToEntity())
	}
	return posts, nil
}

// Update overwrites the editable columns and the author of an existing post.
// The date column is never touched.
func (r *postGorm) Update(ctx context.Context, p *entity.Post) error {
	if p == nil {
		return errors.New("post is nil")
	}
	err := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"title":     p.Title,
			"subtitle":  p.Subtitle,
			"body":      p.Body,
			"img_url":   p.ImgURL,
			"author_id": p.AuthorID,
		}).Error
	if err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateTitle
		}
		return err
	}
	return nil
}

// Delete removes a post and its comments in one transaction.
// If no post exists, usecase.ErrPostNotFound is returned and nothing changes.
func (r *postGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(deleteCommentsSQL, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&PostModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrPostNotFound
		}
		return nil
	})
}
