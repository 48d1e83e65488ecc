package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/henrymzs/estudeAI/internal/metrics"
	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/service"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockAuthService struct {
	registerFunc func(ctx context.Context, name, email, password string) (*models.User, error)
	loginFunc    func(ctx context.Context, email, password string) (*service.LoginResponse, error)
	resolveFunc  func(ctx context.Context, userID int64) (*models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ResolveUser(ctx context.Context, userID int64) (*models.User, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

type mockJWTService struct {
	validateFunc func(tokenString string) (int64, error)
}

func (m *mockJWTService) GenerateAccessToken(userID int64) (string, error) {
	return "token", nil
}

func (m *mockJWTService) ValidateToken(tokenString string) (int64, error) {
	if m.validateFunc != nil {
		return m.validateFunc(tokenString)
	}
	return 0, errors.New("not implemented")
}

func (m *mockJWTService) GetAccessExpiry() time.Duration {
	return 15 * time.Minute
}

type mockActionLogRepository struct {
	entries []*models.ActionLog
}

func (m *mockActionLogRepository) Log(ctx context.Context, entry *models.ActionLog) error {
	m.entries = append(m.entries, entry)
	return nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func setupAuthRouter(authService service.AuthService, audit *mockActionLogRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(authService, audit, newTestMetrics())

	jwtService := &mockJWTService{
		validateFunc: func(tokenString string) (int64, error) {
			if tokenString == "valid" {
				return 1, nil
			}
			return 0, service.ErrTokenMalformed
		},
	}

	router := gin.New()
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.GET("/users/me", middleware.RequireAuth(jwtService, authService), handler.Me)
	return router
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegisterHandler_Success(t *testing.T) {
	audit := &mockActionLogRepository{}
	router := setupAuthRouter(&mockAuthService{
		registerFunc: func(ctx context.Context, name, email, password string) (*models.User, error) {
			return &models.User{ID: 1, Name: name, Email: email, PasswordHash: "$2a$10$secret"}, nil
		},
	}, audit)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", gin.H{
		"nome":  "Ana",
		"email": "ana@x.com",
		"senha": "abcdef",
	}))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if strings.Contains(body, "senha") || strings.Contains(body, "$2a$") {
		t.Errorf("response leaks password material: %s", body)
	}

	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if user.ID != 1 || user.Name != "Ana" || user.Email != "ana@x.com" {
		t.Errorf("user = %+v", user)
	}

	if len(audit.entries) != 1 || audit.entries[0].Action != models.ActionRegister {
		t.Errorf("audit entries = %+v, want one register action", audit.entries)
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{
		registerFunc: func(ctx context.Context, name, email, password string) (*models.User, error) {
			return nil, service.ErrEmailTaken
		},
	}, &mockActionLogRepository{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", gin.H{
		"nome":  "Ana",
		"email": "ana@x.com",
		"senha": "abcdef",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegisterHandler_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing email", body: gin.H{"nome": "Ana", "senha": "abcdef"}},
		{name: "invalid email", body: gin.H{"nome": "Ana", "email": "not-an-email", "senha": "abcdef"}},
		{name: "short password", body: gin.H{"nome": "Ana", "email": "ana@x.com", "senha": "abc"}},
		{name: "missing name", body: gin.H{"email": "ana@x.com", "senha": "abcdef"}},
	}

	router := setupAuthRouter(&mockAuthService{}, &mockActionLogRepository{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLoginHandler_Success(t *testing.T) {
	audit := &mockActionLogRepository{}
	router := setupAuthRouter(&mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return &service.LoginResponse{AccessToken: "signed-token", TokenType: "bearer", UserID: 7}, nil
		},
	}, audit)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", gin.H{
		"email": "ana@x.com",
		"senha": "abcdef",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp service.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Errorf("response = %+v", resp)
	}

	if len(audit.entries) != 1 || audit.entries[0].Action != models.ActionLoginSuccess {
		t.Fatalf("audit entries = %+v, want one login_success action", audit.entries)
	}
	if audit.entries[0].UserID == nil || *audit.entries[0].UserID != 7 {
		t.Errorf("audit entry UserID = %v, want 7", audit.entries[0].UserID)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	audit := &mockActionLogRepository{}
	router := setupAuthRouter(&mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}, audit)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", gin.H{
		"email": "ana@x.com",
		"senha": "wrong!",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "credenciais inválidas") {
		t.Errorf("body = %s, want uniform credentials message", w.Body.String())
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != models.ActionLoginFailure {
		t.Errorf("audit entries = %+v, want one login_failure action", audit.entries)
	}
}

// =============================================================================
// Me Tests
// =============================================================================

func TestMeHandler(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{
		resolveFunc: func(ctx context.Context, userID int64) (*models.User, error) {
			return &models.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil
		},
	}, &mockActionLogRepository{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if user.ID != 1 || user.Name != "Ana" {
		t.Errorf("user = %+v", user)
	}
}

func TestMeHandler_NoToken(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{}, &mockActionLogRepository{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
