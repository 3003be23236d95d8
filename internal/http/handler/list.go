package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/dto"
	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/service"
)

// ListHandler serves the list-scoped card routes.
type ListHandler struct {
	cardService service.CardService
}

func NewListHandler(cardService service.CardService) *ListHandler {
	return &ListHandler{cardService: cardService}
}

func (h *ListHandler) ListCards(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	listID, ok := pathID(c, "listID")
	if !ok {
		return
	}

	cards, err := h.cardService.ListByList(c.Request.Context(), user.ID, listID)
	if err != nil {
		respondError(c, err, "list cards")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponses(cards))
}

func (h *ListHandler) CreateCard(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	listID, ok := pathID(c, "listID")
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name is required"})
		return
	}

	card, err := h.cardService.Create(c.Request.Context(), user.ID, listID, req.Name, req.Description, req.Position)
	if err != nil {
		respondError(c, err, "create card")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

func (h *ListHandler) UpdateCard(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	listID, ok := pathID(c, "listID")
	if !ok {
		return
	}
	cardID, ok := pathID(c, "cardID")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}

	card, err := h.cardService.Update(c.Request.Context(), user.ID, listID, cardID, service.CardUpdate{
		Name:           req.Name,
		Description:    req.Description.Value,
		DescriptionSet: req.Description.Set,
		Position:       req.Position,
		ListID:         req.ListID,
	})
	if err != nil {
		respondError(c, err, "update card")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

func (h *ListHandler) DeleteCard(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	listID, ok := pathID(c, "listID")
	if !ok {
		return
	}
	cardID, ok := pathID(c, "cardID")
	if !ok {
		return
	}

	if err := h.cardService.Delete(c.Request.Context(), user.ID, listID, cardID); err != nil {
		respondError(c, err, "delete card")
		return
	}

	c.Status(http.StatusNoContent)
}
