package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/response"
)

// UserHandler handles user-scoped aggregate requests.
type UserHandler struct {
	statsService service.StatsService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(statsService service.StatsService) *UserHandler {
	return &UserHandler{statsService: statsService}
}

// Stats godoc
// @Summary Study statistics
// @Description Return aggregate counts of the caller's decks, cards and studied cards
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.StatsResponse
// @Failure 401 {object} map[string]string
// @Router /users/stats [get]
func (h *UserHandler) Stats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	stats, err := h.statsService.Stats(c.Request.Context(), user.ID)
	if err != nil {
		response.LogError(c, http.StatusInternalServerError, err, internalMessage)
		return
	}

	c.JSON(http.StatusOK, stats)
}
