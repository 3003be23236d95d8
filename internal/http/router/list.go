package router

import (
	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/handler"
)

func ListRouter(rg *gin.RouterGroup, h *handler.ListHandler) {
	rg.GET("/:listID/cards", h.ListCards)
	rg.POST("/:listID/cards", h.CreateCard)
	rg.PATCH("/:listID/cards/:cardID", h.UpdateCard)
	rg.DELETE("/:listID/cards/:cardID", h.DeleteCard)
}
