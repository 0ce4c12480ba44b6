// Package rest exposes the folder/file operations as an HTTP JSON API.
// Transport only: identity verification happens in the middleware, every
// rule lives in the services layer.
package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/droply/internal/logging"
	"github.com/dmitrijs2005/droply/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address   string
	entries   *services.EntryService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, es *services.EntryService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "rest_server"),
		entries:   es,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all routes registered. Split out from
// Run so handler tests can drive it with httptest.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api", s.accessTokenMiddleware())
	{
		api.POST("/folders/create", s.createFolder)
		api.POST("/files/upload", s.uploadFile)
		api.GET("/files", s.listFiles)
		api.DELETE("/files/empty-trash", s.emptyTrash)
		api.DELETE("/files/:fileId/delete", s.deleteFile)
		api.PATCH("/files/:fileId/star", s.toggleStar)
		api.PATCH("/files/:fileId/trash", s.toggleTrash)
	}

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
