package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the small fixed set of HTML pages straight from disk.
// This is a collaborator of the API, not part of it: no caching, no directory
// listing, and a plain-text 500 when a page cannot be read.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

// Pages maps the served routes to file names under the web root.
func (h *StaticHandler) Pages() map[string]string {
	return map[string]string{
		"/":                "index.html",
		"/index.html":      "index.html",
		"/test.html":       "test.html",
		"/test-user.html":  "test-user.html",
		"/debug.html":      "debug.html",
		"/QUICK_TEST.html": "QUICK_TEST.html",
	}
}

func (h *StaticHandler) Serve(name string) gin.HandlerFunc {
	full := filepath.Join(h.root, name)

	return func(ctx *gin.Context) {
		_, err := os.Stat(full)

		if err != nil {
			ctx.String(http.StatusInternalServerError, "Error loading "+name)
			return
		}

		ctx.File(full)
	}
}
