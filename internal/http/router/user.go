package router

import (
	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/search", h.Search)
}
