package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/repository"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/response"
)

const (
	notFoundMessage  = "recurso não encontrado"
	internalMessage  = "erro interno do servidor"
	invalidIDMessage = "identificador inválido"
)

// DeckHandler handles deck CRUD requests.
type DeckHandler struct {
	deckService   service.DeckService
	actionLogRepo repository.ActionLogRepository
}

// NewDeckHandler creates a new DeckHandler instance.
func NewDeckHandler(deckService service.DeckService, actionLogRepo repository.ActionLogRepository) *DeckHandler {
	return &DeckHandler{
		deckService:   deckService,
		actionLogRepo: actionLogRepo,
	}
}

// CreateDeckRequest represents the deck creation payload.
type CreateDeckRequest struct {
	Title       string  `json:"titulo" binding:"required,max=255"`
	Description *string `json:"descricao" binding:"omitempty,max=500"`
}

// Create godoc
// @Summary Create a deck
// @Description Create a deck owned by the authenticated user
// @Tags decks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateDeckRequest true "Deck data"
// @Success 201 {object} models.Deck
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /decks [post]
func (h *DeckHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	var req CreateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	deck, err := h.deckService.Create(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		response.LogError(c, http.StatusInternalServerError, err, internalMessage)
		return
	}

	c.JSON(http.StatusCreated, deck)
}

// List godoc
// @Summary List decks
// @Description List all decks owned by the authenticated user
// @Tags decks
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Deck
// @Failure 401 {object} map[string]string
// @Router /decks [get]
func (h *DeckHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	decks, err := h.deckService.List(c.Request.Context(), user.ID)
	if err != nil {
		response.LogError(c, http.StatusInternalServerError, err, internalMessage)
		return
	}

	c.JSON(http.StatusOK, decks)
}

// Get godoc
// @Summary Get a deck
// @Description Get one deck with its flashcards; owned decks only
// @Tags decks
// @Security BearerAuth
// @Produce json
// @Param id path int true "Deck ID"
// @Success 200 {object} models.Deck
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /decks/{id} [get]
func (h *DeckHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	deckID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	deck, err := h.deckService.Get(c.Request.Context(), user.ID, deckID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deck)
}

// Update godoc
// @Summary Update a deck
// @Description Apply a partial update to an owned deck; absent fields are untouched
// @Tags decks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Deck ID"
// @Param request body service.DeckPatch true "Fields to update"
// @Success 200 {object} models.Deck
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /decks/{id} [put]
func (h *DeckHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	deckID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	var patch service.DeckPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	deck, err := h.deckService.Update(c.Request.Context(), user.ID, deckID, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deck)
}

// Delete godoc
// @Summary Delete a deck
// @Description Delete an owned deck and all of its flashcards
// @Tags decks
// @Security BearerAuth
// @Param id path int true "Deck ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /decks/{id} [delete]
func (h *DeckHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	deckID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, invalidIDMessage)
		return
	}

	if err := h.deckService.Delete(c.Request.Context(), user.ID, deckID); err != nil {
		respondServiceError(c, err)
		return
	}

	entry := &models.ActionLog{
		Action: models.ActionDeckDelete,
		UserID: &user.ID,
		Source: auditSource,
		Detail: strconv.FormatInt(deckID, 10),
	}
	if err := h.actionLogRepo.Log(c.Request.Context(), entry); err != nil {
		slog.Warn("audit write failed", "action", models.ActionDeckDelete, "error", err)
	}

	c.Status(http.StatusNoContent)
}

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// respondServiceError maps service errors to HTTP responses. ErrNotFound is
// the single answer for both missing and not-owned resources.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, notFoundMessage)
		return
	}
	response.LogError(c, http.StatusInternalServerError, err, internalMessage)
}
