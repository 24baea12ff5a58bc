package view

import (
	"log/slog"
	"net/http"

	"blog_backend/internal/platform/flash"
	"blog_backend/internal/platform/identity"

	"github.com/gin-gonic/gin"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// Node adapts a gomponents node to gin's render.Render.
type Node struct {
	Node g.Node
}

var htmlContentType = []string{"text/html; charset=utf-8"}

// Render writes the node as HTML.
func (n Node) Render(w http.ResponseWriter) error {
	n.WriteContentType(w)
	return n.Node.Render(w)
}

// WriteContentType sets the HTML content type.
func (n Node) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

// Renderer wraps page bodies in the layout with the requester's identity and pending flashes.
type Renderer struct {
	flashes flash.Store
}

// NewRenderer creates a Renderer reading flashes from the given store.
func NewRenderer(flashes flash.Store) *Renderer {
	return &Renderer{flashes: flashes}
}

// Page renders body inside the layout with the given status.
func (r *Renderer) Page(c *gin.Context, status int, title string, body ...g.Node) {
	msgs, err := r.flashes.Pop(c)
	if err != nil {
		slog.Warn("failed to read flashes", "error", err)
	}

	props := LayoutProps{
		Title:    title,
		Identity: identity.Current(c),
		Flashes:  msgs,
	}
	c.Render(status, Node{Node: Layout(props, body...)})
}

// Error renders the error page for status and aborts the request.
func (r *Renderer) Error(c *gin.Context, status int) {
	r.Page(c, status, http.StatusText(status), ErrorBody(status))
	c.Abort()
}

func ErrorBody(status int) g.Node {
	var msg string
	switch status {
	case http.StatusNotFound:
		msg = "The page you were looking for does not exist."
	case http.StatusForbidden:
		msg = "You are not allowed to do that."
	default:
		msg = "Something went wrong. Please try again later."
	}
	return Div(Class("error"),
		H1(g.Textf("%d %s", status, http.StatusText(status))),
		P(g.Text(msg)),
		P(A(Href("/"), g.Text("Back to all posts"))),
	)
}
