package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-health-assistant/internal/auth"
	authHTTP "ai-health-assistant/internal/auth/delivery/http"
	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/middleware"
	"ai-health-assistant/internal/test"
	"ai-health-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	chatUC chat.UseCase
	authUC auth.UseCase
	cookie authHTTP.CookieConfig
	mw     middleware.Middleware

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatUseCase chat.UseCase
	AuthUseCase auth.UseCase
	Cookie      authHTTP.CookieConfig
	Middleware  middleware.Middleware

	// Test domain
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatUC:      cfg.ChatUseCase,
		authUC:      cfg.AuthUseCase,
		cookie:      cfg.Cookie,
		mw:          cfg.Middleware,
		testHandler: cfg.TestHandler,
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
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	return nil
}
