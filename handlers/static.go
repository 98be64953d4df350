// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexPage = "index.html"

// StaticHandler serves the built frontend. Paths that do not name a file
// fall back to index.html so client-side routes resolve.
type StaticHandler struct {
	fsys fs.FS
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{fsys: os.DirFS(dir)}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = indexPage
	}

	if info, err := fs.Stat(h.fsys, name); err != nil || info.IsDir() {
		name = indexPage
	}

	http.ServeFileFS(w, r, h.fsys, name)
}
