package adapters

import (
	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/posts/domain/entity"
)

// PostModel is the GORM model for the blog_posts table.
type PostModel struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"uniqueIndex;size:250;not null"`
	Subtitle string `gorm:"size:250;not null"`
	Date     string `gorm:"size:250;not null"`
	Body     string `gorm:"type:text;not null"`
	ImgURL   string `gorm:"column:img_url;size:250;not null"`
	AuthorID uint   `gorm:"index;not null"`

	// Author exists only so the migrator emits the users foreign key.
	Author *authentity.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM.
func (PostModel) TableName() string {
	return "blog_posts"
}

// ToEntity converts the GORM model to a domain entity.
func (m *PostModel) ToEntity() *entity.Post {
	return &entity.Post{
		ID:       m.ID,
		Title:    m.Title,
		Subtitle: m.Subtitle,
		Date:     m.Date,
		Body:     m.Body,
		ImgURL:   m.ImgURL,
		AuthorID: m.AuthorID,
	}
}

// PostModelFromEntity converts a domain entity to a GORM model.
func PostModelFromEntity(p *entity.Post) *PostModel {
	return &PostModel{
		ID:       p.ID,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Date:     p.Date,
		Body:     p.Body,
		ImgURL:   p.ImgURL,
		AuthorID: p.AuthorID,
	}
}
