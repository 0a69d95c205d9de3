// Package site serves the embedded landing page and the root redirect.
package site

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// DefaultLanding is where GET / sends browsers.
const DefaultLanding = "/static/index.html"

// Option configures Register.
type Option func(*RootHandler)

// WithLanding overrides the redirect target of GET /.
func WithLanding(path string) Option {
	return func(h *RootHandler) {
		if path != "" {
			h.landing = path
		}
	}
}

// Register attaches the embedded static files under /static/ and the root
// redirect to mux.
func Register(_ context.Context, mux *http.ServeMux, opts ...Option) {
	if mux == nil {
		panic("mux is nil")
	}

	root := NewRootHandler(opts...)
	mux.Handle("GET /static/", http.StripPrefix("/static", assets{files: http.FileServer(FS())}))
	mux.HandleFunc("GET /{$}", root.HandleRoot)
}

// RootHandler handles root path requests
type RootHandler struct {
	landing string
}

// NewRootHandler creates a new root handler
func NewRootHandler(opts ...Option) *RootHandler {
	h := &RootHandler{landing: DefaultLanding}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleRoot answers GET / with a 307 to the landing page.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.landing, http.StatusTemporaryRedirect)
}

// assets serves the embedded files. index.html is written directly because
// http.FileServer redirects that name to its directory.
type assets struct {
	files http.Handler
}

func (a assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name != "" && name != "index.html" {
		a.files.ServeHTTP(w, r)
		return
	}
	index, err := fs.ReadFile(staticFS, "static/index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(index))
}
