package router

import (
	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:workspaceID", h.Get)
	rg.PATCH("/:workspaceID", h.Update)
	rg.DELETE("/:workspaceID", h.Delete)
	rg.GET("/:workspaceID/members", h.ListMembers)
	rg.POST("/:workspaceID/members", h.AddMember)
	rg.GET("/:workspaceID/boards", h.ListBoards)
	rg.POST("/:workspaceID/boards", h.CreateBoard)
	rg.DELETE("/:workspaceID/boards/:boardID", h.DeleteBoard)
}
