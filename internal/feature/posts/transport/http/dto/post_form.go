// Package dto defines the form payloads of the posts feature.
package dto

import (
	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
)

// PostForm is the create/edit post form.
type PostForm struct {
	Title    string `form:"title" binding:"required,max=250"`
	Subtitle string `form:"subtitle" binding:"required,max=250"`
	ImgURL   string `form:"img_url" binding:"required,url,max=250"`
	Body     string `form:"body" binding:"required"`
}

// PostFormFrom pre-fills the form from an existing post.
func PostFormFrom(p *entity.Post) PostForm {
	return PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
	}
}

// Input converts the form to usecase input.
func (f PostForm) Input() usecase.PostInput {
	return usecase.PostInput{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Body:     f.Body,
		ImgURL:   f.ImgURL,
	}
}

// CommentForm is the comment box under a post.
type CommentForm struct {
	Comment string `form:"comment" binding:"required"`
}
