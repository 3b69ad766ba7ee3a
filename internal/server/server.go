package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/arvindrk/eatdecider/internal/engine"
	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/arvindrk/eatdecider/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg     *models.Config
	engine  *engine.Engine
	catalog repositories.CatalogRepository
	logger  zerolog.Logger
	router  *gin.Engine
}

func New(cfg *models.Config, eng *engine.Engine, catalog repositories.CatalogRepository, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		engine:  eng,
		catalog: catalog,
		logger:  logger.With().Str("component", "http").Logger(),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(corsMiddleware())
	s.registerRoutes(r)
	s.router = r
	return s
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)
	r.GET("/menu", s.handleMenu)
	r.GET("/recommend", s.handleRecommend)
	r.POST("/feedback", s.handleFeedback)
}

// Handler exposes the router for tests and custom http.Server wiring.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info().Str("addr", s.cfg.Server.Addr).Msg("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
