package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// PageHandler serves the prebuilt frontend from a static web root. Paths
// without a matching file fall back to index.html so client-side routes like
// /dashboard/destinations resolve. The UI itself is built elsewhere; this
// host only has to exist so the session page guard has something to guard.
type PageHandler struct {
	root string
}

func NewPageHandler(root string) *PageHandler {
	return &PageHandler{root: root}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	relative := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	if relative == "" {
		relative = "index.html"
	}

	target := filepath.Join(h.root, relative)
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		http.ServeFile(w, r, target)
		return
	}

	index := filepath.Join(h.root, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, index)
}
