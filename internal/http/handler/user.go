package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/dto"
	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Search finds users by email substring for the member picker.
func (h *UserHandler) Search(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	users, err := h.userService.SearchByEmail(c.Request.Context(), user.ID, c.Query("q"), limit)
	if err != nil {
		respondError(c, err, "search users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
