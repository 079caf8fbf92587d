// Package server exposes an anagram index over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sarthakjha889/go-anagram-trie/internal/config"
)

// Searcher is the index the server queries.
type Searcher interface {
	Anagrams(query string) []string
	Normalise(s string) string
	Len() int
}

// Server is the HTTP host for anagram queries.
type Server struct {
	cfg            config.ServerConfig
	searcher       Searcher
	maxQueryLength int
	logger         *slog.Logger
	router         *gin.Engine
}

// New creates a Server answering queries from searcher. A maxQueryLength of
// zero accepts queries of any length.
func New(cfg config.ServerConfig, search config.SearchConfig, searcher Searcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:            cfg,
		searcher:       searcher,
		maxQueryLength: search.MaxQueryLength,
		logger:         logger,
	}
	dictionaryWords.Set(float64(searcher.Len()))

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	s.RegisterRoutes(router)
	s.router = router
	return s
}

// RegisterRoutes registers the anagram, health and metrics endpoints.
//
//	GET  /v1/anagrams?q=... - Find anagrams of q
//	POST /v1/anagrams       - Find anagrams of {"query": ...}
//	GET  /healthz           - Liveness and dictionary size
//	GET  /metrics           - Prometheus metrics
func (s *Server) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1")
	v1.GET("/anagrams", s.HandleAnagramsQuery)
	v1.POST("/anagrams", s.HandleAnagramsBody)

	router.GET("/healthz", s.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()))
	}
}
