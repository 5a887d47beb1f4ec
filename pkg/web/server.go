package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helmcode/triage-ai/pkg/model"
	slackpkg "github.com/helmcode/triage-ai/pkg/slack"
)

//go:embed templates/*.html
var templateFS embed.FS

// Triager runs the three-stage pipeline. Satisfied by *analyzer.Analyzer;
// faked in handler tests.
type Triager interface {
	Run(ctx context.Context, req model.TriageRequest) model.TriageResult
}

type Server struct {
	triager  Triager
	slackCfg slackpkg.Config
	engine   *gin.Engine
}

func New(triager Triager, slackCfg slackpkg.Config) *Server {
	s := &Server{
		triager:  triager,
		slackCfg: slackCfg,
	}

	engine := gin.New()
	engine.Use(RequestLogger(), Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	engine.GET("/", s.handleIndex)
	engine.POST("/analyze", s.handleAnalyzeForm)
	engine.POST("/api/v1/analyze", s.handleAnalyzeAPI)
	engine.GET("/health", s.handleHealth)

	s.engine = engine
	return s
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run serves HTTP on addr until ctx is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Triage runs block on three sequential model calls, so responses
		// can take minutes.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
