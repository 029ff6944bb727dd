package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "ai-health-assistant/internal/auth/delivery/http"
	chatHTTP "ai-health-assistant/internal/chat/delivery/http"
	"ai-health-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Chat domain
	chatHandler := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat domain registered at /api/v1/chat")

	// Auth domain
	authHandler := authHTTP.New(srv.l, srv.authUC, srv.cookie)
	authGroup := api.Group("/auth")
	authHTTP.RegisterRoutes(authGroup, authHandler, srv.mw)
	if srv.environment != string(model.EnvironmentProduction) {
		authHTTP.RegisterDevRoutes(authGroup, authHandler)
		srv.l.Warnf(ctx, "Dev login route registered (environment: %s)", srv.environment)
	}
	srv.l.Infof(ctx, "Auth domain registered at /api/v1/auth")

	// Test routes stay out of production builds of the route table.
	if srv.testHandler != nil && srv.environment != string(model.EnvironmentProduction) {
		srv.gin.POST("/test/relay", srv.testHandler.HandleTestRelay)
		srv.gin.GET("/test/health", srv.testHandler.HandleHealthCheck)
		srv.l.Infof(ctx, "Test routes registered")
	}

	return nil
}
