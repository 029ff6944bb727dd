package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ai-health-assistant/config"
	_ "ai-health-assistant/docs" // Swagger docs
	authHTTP "ai-health-assistant/internal/auth/delivery/http"
	authMemory "ai-health-assistant/internal/auth/repository/memory"
	authUsecase "ai-health-assistant/internal/auth/usecase"
	chatMemory "ai-health-assistant/internal/chat/repository/memory"
	chatUsecase "ai-health-assistant/internal/chat/usecase"
	"ai-health-assistant/internal/httpserver"
	"ai-health-assistant/internal/middleware"
	"ai-health-assistant/internal/relay"
	"ai-health-assistant/internal/test"
	"ai-health-assistant/pkg/googleauth"
	"ai-health-assistant/pkg/log"
	"ai-health-assistant/pkg/openai"
)

// @title       AI Health Assistant API
// @description Chat relay between a browser UI and the OpenAI chat-completions API, with Google sign-in sessions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Health Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion relay. A missing API key is reported per request
	// (500), never at startup, so the server always comes up.
	var openAIClient openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		openAIClient, err = openai.New(openai.Config{
			APIKey:     cfg.OpenAI.APIKey,
			Model:      cfg.OpenAI.Model,
			BaseURL:    cfg.OpenAI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
			return
		}
		logger.Infof(ctx, "OpenAI client initialized (model: %s)", openAIClient.Model())
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY is missing; chat requests will fail until it is set")
	}
	completionRelay := relay.New(logger, openAIClient)

	// 4. Chat domain
	conversationRepo := chatMemory.New(cfg.Chat.ConversationTTL)
	chatUC := chatUsecase.New(conversationRepo, completionRelay, logger)

	// 5. Auth domain
	sessionRepo := authMemory.New(cfg.Session.TTL)

	var googleClient googleauth.IGoogleAuth
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		client, gaErr := googleauth.New(googleauth.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		})
		if gaErr != nil {
			logger.Error(ctx, "Failed to initialize Google sign-in: ", gaErr)
			return
		}
		googleClient = client
		logger.Info(ctx, "Google sign-in initialized")
	} else {
		logger.Warn(ctx, "Google sign-in not configured; only dev login is available outside production")
	}
	authUC := authUsecase.New(sessionRepo, googleClient, cfg.Session.TTL, logger)

	// 6. Middleware
	mw := middleware.New(logger, sessionRepo, middleware.Config{
		CookieName:      cfg.Session.CookieName,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})

	// 7. Test handler (registered outside production only)
	testHandler := test.New(logger, completionRelay)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUseCase: chatUC,
		AuthUseCase: authUC,
		Cookie: authHTTP.CookieConfig{
			Name:     cfg.Session.CookieName,
			Domain:   cfg.Session.CookieDomain,
			Secure:   cfg.Session.CookieSecure,
			MaxAge:   int(cfg.Session.TTL.Seconds()),
			Redirect: cfg.Session.Redirect,
		},
		Middleware:  mw,
		TestHandler: testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
