package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"travel-planner/config"
	"travel-planner/internal/packing"
	"travel-planner/internal/session"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Domain dependencies
	llm      *llmprovider.Manager
	sessions *session.Registry
	ids      packing.IDSource
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	LLM      *llmprovider.Manager
	Sessions *session.Registry
	IDs      packing.IDSource
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		llm:         cfg.LLM,
		sessions:    cfg.Sessions,
		ids:         cfg.IDs,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.sessions == nil {
		return errors.New("session registry is required")
	}
	if srv.ids == nil {
		return errors.New("id source is required")
	}
	return nil
}
