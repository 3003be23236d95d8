package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/dto"
	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/service"
)

// BoardHandler serves the board-scoped list routes. Board creation and
// deletion live on the workspace routes, mirroring the nesting of the
// REST surface.
type BoardHandler struct {
	listService service.ListService
}

func NewBoardHandler(listService service.ListService) *BoardHandler {
	return &BoardHandler{listService: listService}
}

func (h *BoardHandler) ListLists(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	boardID, ok := pathID(c, "boardID")
	if !ok {
		return
	}

	lists, err := h.listService.ListByBoard(c.Request.Context(), user.ID, boardID)
	if err != nil {
		respondError(c, err, "list lists")
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponses(lists))
}

func (h *BoardHandler) CreateList(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	boardID, ok := pathID(c, "boardID")
	if !ok {
		return
	}

	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name is required"})
		return
	}

	list, err := h.listService.Create(c.Request.Context(), user.ID, boardID, req.Name, req.Position)
	if err != nil {
		respondError(c, err, "create list")
		return
	}

	c.JSON(http.StatusCreated, dto.ToListResponse(list))
}

func (h *BoardHandler) UpdateList(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	boardID, ok := pathID(c, "boardID")
	if !ok {
		return
	}
	listID, ok := pathID(c, "listID")
	if !ok {
		return
	}

	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}

	list, err := h.listService.Update(c.Request.Context(), user.ID, boardID, listID, service.ListUpdate{
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		respondError(c, err, "update list")
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(list))
}

func (h *BoardHandler) DeleteList(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	boardID, ok := pathID(c, "boardID")
	if !ok {
		return
	}
	listID, ok := pathID(c, "listID")
	if !ok {
		return
	}

	if err := h.listService.Delete(c.Request.Context(), user.ID, boardID, listID); err != nil {
		respondError(c, err, "delete list")
		return
	}

	c.Status(http.StatusNoContent)
}
