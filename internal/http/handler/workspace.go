package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/dto"
	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
	boardService     service.BoardService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService, boardService service.BoardService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		boardService:     boardService,
	}
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())

	workspaces, err := h.workspaceService.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(workspaces))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	ws, err := h.workspaceService.Get(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err, "get workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name is required"})
		return
	}

	ws, err := h.workspaceService.Create(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		respondError(c, err, "create workspace")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name is required"})
		return
	}

	ws, err := h.workspaceService.Update(c.Request.Context(), user.ID, workspaceID, req.Name)
	if err != nil {
		respondError(c, err, "update workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(c.Request.Context(), user.ID, workspaceID); err != nil {
		respondError(c, err, "delete workspace")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	members, err := h.workspaceService.Members(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err, "list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(members))
}

func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "user_id is required"})
		return
	}

	ws, err := h.workspaceService.AddMember(c.Request.Context(), user.ID, workspaceID, req.UserID)
	if err != nil {
		respondError(c, err, "add member")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) ListBoards(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	boards, err := h.boardService.ListByWorkspace(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err, "list boards")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponses(boards))
}

func (h *WorkspaceHandler) CreateBoard(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name is required"})
		return
	}

	board, err := h.boardService.Create(c.Request.Context(), user.ID, workspaceID, req.Name)
	if err != nil {
		respondError(c, err, "create board")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoardResponse(board))
}

func (h *WorkspaceHandler) DeleteBoard(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	workspaceID, ok := pathID(c, "workspaceID")
	if !ok {
		return
	}
	boardID, ok := pathID(c, "boardID")
	if !ok {
		return
	}

	if err := h.boardService.Delete(c.Request.Context(), user.ID, workspaceID, boardID); err != nil {
		respondError(c, err, "delete board")
		return
	}

	c.Status(http.StatusNoContent)
}
