package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/delacruzclinic/clinic-booking/internal/config"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

const (
	SessionCookie = "clinic_session"

	ContextUserID   = "userID"
	ContextUsername = "username"
)

// UserStore re-verifies the session claim against the live users table.
// The cookie is a claim, not a source of truth.
type UserStore interface {
	FindByIDAndUsername(ctx context.Context, id, username string) (*models.User, error)
}

// AuthMiddleware admits a request only when the session cookie parses, its
// claims carry both id and username, and that exact pair still exists in the
// users table. Applied to admin routes only.
func AuthMiddleware(cfg *config.Config, users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		id, username, ok := ParseSessionToken(raw, cfg.SessionSecret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		user, err := users.FindByIDAndUsername(c.Request.Context(), id, username)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown_session_user"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)

		c.Next()
	}
}

// ParseSessionToken extracts the {id, username} pair from a session token.
// ok is false for anything malformed, unsigned, expired, or incomplete.
func ParseSessionToken(raw, secret string) (id, username string, ok bool) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return "", "", false
	}

	id, ok1 := claims["sub"].(string)
	username, ok2 := claims["username"].(string)
	if !ok1 || !ok2 || id == "" || username == "" {
		return "", "", false
	}

	return id, username, true
}
