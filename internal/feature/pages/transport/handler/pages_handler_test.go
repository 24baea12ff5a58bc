package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blog_backend/internal/platform/flash"
	"blog_backend/internal/platform/view"
)

func TestPagesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewPagesHandler(view.NewRenderer(flash.NewCookieStore("", false)))
	r := gin.New()
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)

	for path, want := range map[string]string{"/about": "About Me", "/contact": "Contact Me"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
		assert.Contains(t, w.Body.String(), `href="/login"`, "anonymous navbar")
	}
}
