package static

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/coniugo/internal/config"
)

const fallbackContentType = "application/octet-stream"

type Handler struct {
	root string
}

func NewHandler(root string) (*Handler, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve static root: %w", err)
	}
	return &Handler{root: abs}, nil
}

// Serve streams the file named by the wildcard path segment. Anything outside the
// root, missing, or a directory is reported as not found.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	path, ok := h.resolve(chi.URLParam(r, "*"))
	if !ok {
		log.WithField("path", r.URL.Path).Warn("Caminho estático rejeitado")
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", ContentType(path))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// resolve maps a slash-separated relative path to a file path under the root.
func (h *Handler) resolve(rel string) (string, bool) {
	if rel == "" || strings.ContainsRune(rel, 0) {
		return "", false
	}

	candidate := filepath.Join(h.root, filepath.FromSlash(rel))
	inside, err := filepath.Rel(h.root, candidate)
	if err != nil || inside == "." || inside == ".." ||
		strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", false
	}
	return candidate, true
}

// ContentType infers the media type from the file extension.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return fallbackContentType
}
