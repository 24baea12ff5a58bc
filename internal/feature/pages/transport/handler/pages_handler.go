// Package handler serves the static pages.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "github.com/maragudk/gomponents"

	"blog_backend/internal/feature/pages/transport/page"
)

// Renderer draws pages inside the site layout.
type Renderer interface {
	Page(c *gin.Context, status int, title string, body ...g.Node)
}

// PagesHandler serves /about and /contact.
type PagesHandler struct {
	pages Renderer
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(pages Renderer) *PagesHandler {
	return &PagesHandler{pages: pages}
}

func (h *PagesHandler) About(c *gin.Context) {
	h.pages.Page(c, http.StatusOK, "About", page.AboutPage())
}

func (h *PagesHandler) Contact(c *gin.Context) {
	h.pages.Page(c, http.StatusOK, "Contact", page.ContactPage())
}
