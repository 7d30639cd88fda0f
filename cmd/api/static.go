package main

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// staticFS esconde dotfiles (.env, .git, ...) e não lista diretórios sem
// index.html. O .env com as credenciais fica no mesmo diretório servido.
type staticFS struct {
	root http.FileSystem
}

func newStaticFS(dir string) http.FileSystem {
	return staticFS{root: http.Dir(dir)}
}

func (s staticFS) Open(name string) (http.File, error) {
	if hasDotSegment(name) {
		return nil, fs.ErrNotExist
	}

	f, err := s.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := s.root.Open(path.Join(name, "index.html"))
	if err != nil {
		f.Close()
		return nil, fs.ErrNotExist
	}
	index.Close()

	return f, nil
}

func hasDotSegment(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
