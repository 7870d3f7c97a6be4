// Package server exposes the extractor over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wikiguess/internal/logging"
	"wikiguess/wikiguess"
)

// Server wraps the router and its dependencies.
type Server struct {
	router  *gin.Engine
	options wikiguess.Options
	logger  *zap.Logger
	metrics *Metrics
}

// New builds a server answering with pages retrieved through opts.
// The gin mode is process-wide and left to the caller.
func New(opts wikiguess.Options, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger)
	opts.Logger = logger
	opts.IndentJSON = false

	s := &Server{
		router:  gin.New(),
		options: opts,
		logger:  logger,
		metrics: NewMetrics(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(metricsMiddleware(s.metrics))
	s.router.Use(requestLogger(logger))

	s.router.GET("/", s.root)
	s.router.GET("/health", s.health)
	s.router.GET("/countries", s.countries)
	s.router.GET("/countries/:page", s.countryInfo)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is done, then shuts down within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.Info("starting HTTP server", zap.String("addr", addr))

		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	})

	group.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	err := group.Wait()
	_ = s.logger.Sync()

	return err
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
