package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "hotel-assistant/internal/chat/delivery/http"
	"hotel-assistant/internal/model"
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
	srv.gin.Use(srv.mw.RequestID())

	// gin access logs are only useful outside production, zap covers the rest
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
	srv.l.Infof(context.Background(), "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
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

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group("/api/v1")

	// Pattern for a domain: build the handler from its use case, then register its routes.
	h := chatHTTP.New(srv.l, srv.chatUC, srv.classifier, srv.resolver)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, srv.mw)

	srv.l.Infof(context.Background(), "Chat domain registered at /api/v1/chat")
	return nil
}
