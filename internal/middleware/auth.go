// Package middleware provides HTTP middleware for the EstudeAI API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/response"
)

// userContextKey is where the guard stores the resolved user in the gin
// context.
const userContextKey = "currentUser"

// unauthenticatedMessage is the single body returned for every guard
// failure. Missing token, bad signature, expired token and deleted user
// are deliberately indistinguishable to the client.
const unauthenticatedMessage = "credenciais inválidas"

// RequireAuth validates the bearer token, resolves it to a user record and
// stores the user in the request context. Any failure aborts with 401.
func RequireAuth(jwtService service.JWTService, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		userID, err := jwtService.ValidateToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		user, err := authService.ResolveUser(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
