// Package httpapi exposes the credential and document services over HTTP.
// Auth routes are open; data routes are gated by the bearer-token middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cloudtracker/internal/logging"
	"cloudtracker/internal/server/documents"
	"cloudtracker/internal/server/users"
)

type Server struct {
	address   string
	users     *users.Service
	documents *documents.Service
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *users.Service, ds *documents.Service, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		documents: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	auth := r.Group("/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)

	data := r.Group("/data", s.requireAuth())
	data.GET("", s.handleList)
	data.POST("/:key", s.handlePut)
	data.GET("/:key", s.handleGet)
	data.DELETE("/:key", s.handleDelete)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
