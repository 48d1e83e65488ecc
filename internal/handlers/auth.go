// Package handlers contains HTTP request handlers for the EstudeAI API.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/henrymzs/estudeAI/internal/metrics"
	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/repository"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/response"
)

const auditSource = "estudeai-api"

// AuthHandler handles registration, login and current-user requests.
type AuthHandler struct {
	authService   service.AuthService
	actionLogRepo repository.ActionLogRepository
	metrics       *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, actionLogRepo repository.ActionLogRepository, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		actionLogRepo: actionLogRepo,
		metrics:       m,
	}
}

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Name     string `json:"nome" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"senha" binding:"required,min=6"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "email já registrado")
			return
		}
		response.LogError(c, http.StatusInternalServerError, err, "erro interno do servidor")
		return
	}

	h.metrics.RegistrationsTotal.Inc()
	h.audit(c, models.ActionRegister, &user.ID, user.Email)

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		h.audit(c, models.ActionLoginFailure, nil, req.Email)
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit(c, models.ActionLoginSuccess, &resp.UserID, req.Email)

	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's record
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "credenciais inválidas")
		return
	}
	c.JSON(http.StatusOK, user)
}

// audit writes an action log entry; failures are logged and swallowed.
func (h *AuthHandler) audit(c *gin.Context, action string, userID *int64, detail string) {
	entry := &models.ActionLog{
		Action: action,
		UserID: userID,
		Source: auditSource,
		Detail: detail,
	}
	if err := h.actionLogRepo.Log(c.Request.Context(), entry); err != nil {
		slog.Warn("audit write failed", "action", action, "error", err)
	}
}
