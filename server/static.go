package server

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func (s *Server) staticHandler(w http.ResponseWriter, r *http.Request) {
	fs := s.currentStaticFs()
	if fs == nil {
		http.Error(w, "website not built yet", http.StatusServiceUnavailable)
		return
	}

	isHTML := strings.HasSuffix(r.URL.Path, "/") || strings.HasSuffix(r.URL.Path, ".html")
	setCacheControl(w, isHTML)

	if isHTML && r.Method == http.MethodGet {
		if data, ok := s.pages.get(r.URL.Path); ok {
			serveHTML(w, http.StatusOK, data)
			return
		}

		data, err := fs.readHTML(r.URL.Path)
		if err == nil {
			s.pages.put(r.URL.Path, data)
			serveHTML(w, http.StatusOK, data)
			return
		}

		s.serveNotFound(w, fs)
		return
	}

	nfw := &notFoundRedirectRespWr{ResponseWriter: w}
	fs.ServeHTTP(nfw, r)

	if nfw.status == http.StatusNotFound {
		w.Header().Del("Content-Type") // Let http.ServeFile set the correct header
		s.serveNotFound(w, fs)
	}
}

func (s *Server) serveNotFound(w http.ResponseWriter, fs *staticFs) {
	data, err := fs.readHTML("/404.html")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	serveHTML(w, http.StatusNotFound, data)
}

func serveHTML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

type notFoundRedirectRespWr struct {
	http.ResponseWriter // We embed http.ResponseWriter
	status              int
}

func (w *notFoundRedirectRespWr) WriteHeader(status int) {
	w.status = status // Store the status for our own use
	if status != http.StatusNotFound {
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *notFoundRedirectRespWr) Write(p []byte) (int, error) {
	if w.status != http.StatusNotFound {
		return w.ResponseWriter.Write(p)
	}
	return len(p), nil // Lie that we successfully written it
}

type neuteredFs struct {
	http.FileSystem
}

func (nfs neuteredFs) Open(path string) (http.File, error) {
	f, err := nfs.FileSystem.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if s.IsDir() {
		index := filepath.Join(path, "index.html")
		if _, err := nfs.FileSystem.Open(index); err != nil {
			closeErr := f.Close()
			if closeErr != nil {
				return nil, closeErr
			}

			return nil, err
		}
	}

	return f, nil
}

type staticFs struct {
	dir string
	afero.Fs
	http.Handler
}

func newStaticFs(dir string) *staticFs {
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	handler := http.FileServer(neuteredFs{afero.NewHttpFs(fs).Dir("/")})

	return &staticFs{
		dir:     dir,
		Fs:      fs,
		Handler: handler,
	}
}

func (s *staticFs) readHTML(filepath string) ([]byte, error) {
	if !strings.HasSuffix(filepath, ".html") {
		filepath = path.Join(filepath, "index.html")
	}

	return afero.ReadFile(s, filepath)
}
