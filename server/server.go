package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vitae-dev/vitae/core"
	"github.com/vitae-dev/vitae/log"
	"github.com/vitae-dev/vitae/renderer"
)

// Server is the preview server: it serves the latest build of the résumé
// and rebuilds it in the background when content changes.
type Server struct {
	*zap.SugaredLogger

	c        *core.Config
	co       *core.Core
	renderer *renderer.Renderer

	server *http.Server
	cron   *cron.Cron

	pages *pageCache

	staticFsLock sync.RWMutex
	staticFs     *staticFs
}

func NewServer(c *core.Config, co *core.Core, r *renderer.Renderer) (*Server, error) {
	s := &Server{
		SugaredLogger: log.S(),

		c:        c,
		co:       co,
		renderer: r,

		cron:  cron.New(),
		pages: newPageCache(),
	}

	co.BuildHook = s.buildHook

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)
	router.Use(log.WithZap)
	router.Use(s.recoverer)
	router.NotFound(s.staticHandler)
	router.MethodNotAllowed(s.staticHandler)

	s.server = &http.Server{Handler: router}

	rebuildEvery := "@every 10m"
	if c.Development {
		rebuildEvery = "@every 30s"
	}

	_, err := s.cron.AddFunc(rebuildEvery, func() {
		err := s.rebuild()
		if err != nil {
			s.Errorw("failed to rebuild website", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) Start() error {
	should, err := s.co.ShouldBuild()
	if err != nil {
		return err
	}

	if should {
		err = s.renderer.BuildSite(false)
		if err != nil {
			return err
		}
	}

	s.cron.Start()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.c.Port))
	if err != nil {
		return err
	}

	s.Infow("listening", "address", ln.Addr().String())
	err = s.server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Stop() error {
	s.cron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) rebuild() error {
	s.co.ReloadCollections()
	return s.renderer.BuildSite(false)
}

func (s *Server) buildHook(dir string) {
	s.Infow("build directory changed", "dir", dir)

	s.staticFsLock.Lock()
	s.staticFs = newStaticFs(dir)
	s.staticFsLock.Unlock()

	s.pages.clear()
}

func (s *Server) currentStaticFs() *staticFs {
	s.staticFsLock.RLock()
	defer s.staticFsLock.RUnlock()
	return s.staticFs
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				s.Errorf("panic while serving: %s", rvr)
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
