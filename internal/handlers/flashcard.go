package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/response"
)

// FlashcardHandler handles flashcard CRUD requests.
type FlashcardHandler struct {
	cardService service.FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler instance.
func NewFlashcardHandler(cardService service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{cardService: cardService}
}

// CreateFlashcardRequest represents the flashcard creation payload.
type CreateFlashcardRequest struct {
	DeckID   int64  `json:"deck_id" binding:"required"`
	Question string `json:"pergunta" binding:"required,max=500"`
	Answer   string `json:"resposta" binding:"required,max=1000"`
}

// Create godoc
// @Summary Create a flashcard
// @Description Create a flashcard in a deck owned by the authenticated user
// @Tags flashcards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateFlashcardRequest true "Flashcard data"
// @Success 201 {object} models.Flashcard
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flashcards [post]
func (h *FlashcardHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	var req CreateFlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.cardService.Create(c.Request.Context(), user.ID, req.DeckID, req.Question, req.Answer)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// ListAll godoc
// @Summary List all flashcards
// @Description List every flashcard across the authenticated user's decks
// @Tags flashcards
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Flashcard
// @Failure 401 {object} map[string]string
// @Router /flashcards/all [get]
func (h *FlashcardHandler) ListAll(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	cards, err := h.cardService.ListAll(c.Request.Context(), user.ID)
	if err != nil {
		response.LogError(c, http.StatusInternalServerError, err, internalMessage)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ListByDeck godoc
// @Summary List flashcards in a deck
// @Description List flashcards in one owned deck
// @Tags flashcards
// @Security BearerAuth
// @Produce json
// @Param deck_id path int true "Deck ID"
// @Success 200 {array} models.Flashcard
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flashcards/deck/{deck_id} [get]
func (h *FlashcardHandler) ListByDeck(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	deckID, err := pathID(c, "deck_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	cards, err := h.cardService.ListByDeck(c.Request.Context(), user.ID, deckID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// Get godoc
// @Summary Get a flashcard
// @Description Get one flashcard from the authenticated user's decks
// @Tags flashcards
// @Security BearerAuth
// @Produce json
// @Param id path int true "Flashcard ID"
// @Success 200 {object} models.Flashcard
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flashcards/{id} [get]
func (h *FlashcardHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	cardID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	card, err := h.cardService.Get(c.Request.Context(), user.ID, cardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Update godoc
// @Summary Update a flashcard
// @Description Apply a partial update; absent fields are untouched
// @Tags flashcards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Flashcard ID"
// @Param request body service.FlashcardPatch true "Fields to update"
// @Success 200 {object} models.Flashcard
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flashcards/{id} [put]
func (h *FlashcardHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	cardID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	var patch service.FlashcardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.cardService.Update(c.Request.Context(), user.ID, cardID, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Delete godoc
// @Summary Delete a flashcard
// @Description Delete one flashcard from the authenticated user's decks
// @Tags flashcards
// @Security BearerAuth
// @Param id path int true "Flashcard ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flashcards/{id} [delete]
func (h *FlashcardHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	cardID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	if err := h.cardService.Delete(c.Request.Context(), user.ID, cardID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
