package adapters

import (
	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/comments/domain/entity"
	postadapters "blog_backend/internal/feature/posts/adapters"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       uint   `gorm:"primaryKey"`
	Text     string `gorm:"type:text;not null"`
	AuthorID uint   `gorm:"index;not null"`
	PostID   uint   `gorm:"index;not null"`

	Author *authentity.User        `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Post   *postadapters.PostModel `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:       m.ID,
		Text:     m.Text,
		AuthorID: m.AuthorID,
		PostID:   m.PostID,
	}
}

// CommentModelFromEntity converts a domain entity to a GORM model.
func CommentModelFromEntity(c *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:       c.ID,
		Text:     c.Text,
		AuthorID: c.AuthorID,
		PostID:   c.PostID,
	}
}
