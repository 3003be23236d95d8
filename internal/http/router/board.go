package router

import (
	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/handler"
)

func BoardRouter(rg *gin.RouterGroup, h *handler.BoardHandler) {
	rg.GET("/:boardID/lists", h.ListLists)
	rg.POST("/:boardID/lists", h.CreateList)
	rg.PATCH("/:boardID/lists/:listID", h.UpdateList)
	rg.DELETE("/:boardID/lists/:listID", h.DeleteList)
}
