// Package page renders the posts feature's pages.
package page

import (
	"fmt"

	"blog_backend/internal/feature/posts/transport/http/dto"
	"blog_backend/internal/feature/posts/usecase"
	"blog_backend/internal/platform/identity"
	"blog_backend/internal/platform/view"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func postMeta(author, date string) g.Node {
	return P(Class("post-meta"), g.Textf("Posted by %s on %s", author, date))
}

func IndexPage(posts []usecase.PostSummary, viewer identity.Identity) g.Node {
	previews := make([]g.Node, 0, len(posts))
	for _, s := range posts {
		previews = append(previews, Div(Class("post-preview"),
			A(Href(fmt.Sprintf("/post/%d", s.Post.ID)),
				H2(Class("post-title"), g.Text(s.Post.Title)),
				H3(Class("post-subtitle"), g.Text(s.Post.Subtitle)),
			),
			postMeta(s.AuthorName, s.Post.Date),
			g.If(viewer.Admin,
				A(Class("delete"), Href(fmt.Sprintf("/delete/%d", s.Post.ID)), g.Text("✘ Delete")),
			),
		))
	}

	return Div(Class("index"),
		H1(g.Text("Blog")),
		P(g.Text("A collection of random musings.")),
		g.If(len(posts) == 0, P(g.Text("No posts yet."))),
		g.Group(previews),
		g.If(viewer.Admin,
			A(Class("button"), Href("/new-post"), g.Text("Create New Post")),
		),
	)
}

// PostPage shows a post with its comments and the comment box.
func PostPage(detail *usecase.PostDetail, viewer identity.Identity, form dto.CommentForm, errs map[string]string) g.Node {
	p := detail.Post

	comments := make([]g.Node, 0, len(detail.Comments))
	for _, cv := range detail.Comments {
		comments = append(comments, Li(Class("comment"),
			P(g.Text(cv.Comment.Text)),
			Span(Class("post-meta"), g.Text(cv.AuthorName)),
			g.If(viewer.IsAuthenticated() && viewer.UserID() == cv.Comment.AuthorID,
				A(Class("delete"), Href(fmt.Sprintf("/show-post/%d/%d", p.ID, cv.Comment.ID)), g.Text("✘")),
			),
		))
	}

	return Article(Class("post"),
		Header(Class("post-heading"),
			Img(Src(p.ImgURL), Alt(p.Title), Class("post-image")),
			H1(g.Text(p.Title)),
			H2(Class("post-subtitle"), g.Text(p.Subtitle)),
			postMeta(detail.AuthorName, p.Date),
		),
		// The body is HTML written by the administrator.
		Div(Class("post-body"), g.Raw(p.Body)),
		g.If(viewer.Admin,
			A(Class("button"), Href(fmt.Sprintf("/edit-post/%d", p.ID)), g.Text("Edit Post")),
		),
		Hr(),
		view.PostForm(fmt.Sprintf("/post/%d", p.ID), "Submit Comment", errs[""],
			view.TextAreaField(view.FieldProps{Name: "comment", Label: "Comment", Value: form.Comment, Error: errs["Comment"]}),
		),
		Ul(Class("comments"), g.Group(comments)),
	)
}

// EditorPage is the create or edit post form. A zero postID means create.
func EditorPage(postID uint, form dto.PostForm, errs map[string]string) g.Node {
	heading, action := "New Post", "/new-post"
	if postID != 0 {
		heading, action = "Edit Post", fmt.Sprintf("/edit-post/%d", postID)
	}

	return Div(Class("editor"),
		H1(g.Text(heading)),
		view.PostForm(action, "Submit Post", errs[""],
			view.TextField(view.FieldProps{Name: "title", Label: "Blog Post Title", Value: form.Title, Error: errs["Title"]}),
			view.TextField(view.FieldProps{Name: "subtitle", Label: "Subtitle", Value: form.Subtitle, Error: errs["Subtitle"]}),
			view.TextField(view.FieldProps{Name: "img_url", Label: "Blog Image URL", Type: "url", Value: form.ImgURL, Error: errs["ImgURL"]}),
			view.TextAreaField(view.FieldProps{Name: "body", Label: "Blog Content", Value: form.Body, Error: errs["Body"]}),
		),
	)
}
