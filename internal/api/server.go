// Package api is the HTTP boundary: routing, authentication middleware and
// response shaping around the service layer.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/careerforge/jobboard/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	engine *gin.Engine
	http   *http.Server
}

func NewServer(cfg config.ServerConfig, auth *AuthHandler, jobs *JobHandler,
	applications *ApplicationHandler, users *UserHandler, uploads *UploadHandler) *Server {

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestMetrics())

	corsConfig := cors.DefaultConfig()
	if cfg.ClientURL != "" {
		corsConfig.AllowOrigins = []string{cfg.ClientURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	registerRoutes(engine, auth, jobs, applications, users, uploads)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: engine,
		},
	}
}

// Handler exposes the routed engine for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run() {
	log.Infof("HTTP server listening on %v", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.http.Shutdown(ctx); err != nil {
		log.Errorf("HTTP server shutdown: %v", err)
	}
}
