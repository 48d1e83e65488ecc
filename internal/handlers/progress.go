package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/response"
)

// ProgressHandler handles study record requests.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler instance.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// RecordStudyRequest represents the study record payload.
type RecordStudyRequest struct {
	FlashcardID int64 `json:"flashcard_id" binding:"required"`
}

// Record godoc
// @Summary Record a studied flashcard
// @Description Mark one of the caller's flashcards as studied
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RecordStudyRequest true "Studied flashcard"
// @Success 201 {object} models.StudyRecord
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /progress [post]
func (h *ProgressHandler) Record(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	var req RecordStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.progressService.RecordStudy(c.Request.Context(), user.ID, req.FlashcardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
