// Package server exposes the five RSA operations over HTTP as JSON
// endpoints. Handlers are a thin mapping layer: bind the request body, call
// the operation, render the result with its wall-clock duration. All
// computation is CPU-bound and runs to completion on the handler goroutine;
// dropped connections do not cancel it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"rsabackend/src/config"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 5 * time.Second

// Server is the HTTP façade over the RSA operations.
type Server struct {
	cfg    config.Config
	engine *gin.Engine
}

// New builds a Server with its routes and middleware registered.
func New(cfg config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), corsAllowAll())

	s := &Server{cfg: cfg, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/keygen/:len", s.handleKeyGen)
	engine.POST("/encrypt", s.handleEncrypt)
	engine.POST("/decrypt", s.handleDecrypt)
	engine.POST("/sign", s.handleSign)
	engine.POST("/verify_sign", s.handleVerifySign)

	return s
}

// Handler returns the underlying http.Handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then drains in-flight requests
// and returns. A bind failure surfaces as the returned error.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// corsAllowAll permits every origin, mirroring the service's open CORS
// policy.
func corsAllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
