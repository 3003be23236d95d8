package router

import (
	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/handler"
	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/realtime"
	"corkboard.app/api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services, gateway *realtime.Gateway) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)

	authHandler := handler.NewAuthHandler(authService)
	AuthRouter(router.Group("/api/auth"), authHandler, requireAuth)

	api := router.Group("/api", requireAuth)
	{
		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(api.Group("/users"), userHandler)

		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces(), services.Boards())
		WorkspaceRouter(api.Group("/workspaces"), workspaceHandler)

		boardHandler := handler.NewBoardHandler(services.Lists())
		BoardRouter(api.Group("/boards"), boardHandler)

		listHandler := handler.NewListHandler(services.Cards())
		ListRouter(api.Group("/lists"), listHandler)
	}

	wsHandler := handler.NewWSHandler(services.Workspaces(), gateway)
	router.GET("/ws/:workspaceID", requireAuth, wsHandler.Connect)
}
