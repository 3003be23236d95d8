package handler

import (
	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/realtime"
	"corkboard.app/api/internal/service"
)

type WSHandler struct {
	workspaceService service.WorkspaceService
	gateway          *realtime.Gateway
}

func NewWSHandler(workspaceService service.WorkspaceService, gateway *realtime.Gateway) *WSHandler {
	return &WSHandler{
		workspaceService: workspaceService,
		gateway:          gateway,
	}
}

// Connect authorizes the user for the workspace and hands the request
// to the gateway. The subscription lives until the client disconnects.
func (h *WSHandler) Connect(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	if _, err := h.workspaceService.Get(c.Request.Context(), user.ID, workspaceID); err != nil {
		respondError(c, err, "open workspace channel")
		return
	}

	_ = h.gateway.Serve(c.Writer, c.Request, workspaceID, user.ID)
}
