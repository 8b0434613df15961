package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/delacruzclinic/clinic-booking/internal/audit"
	"github.com/delacruzclinic/clinic-booking/internal/config"
	"github.com/delacruzclinic/clinic-booking/internal/httperr"
	"github.com/delacruzclinic/clinic-booking/internal/httpresp"
	"github.com/delacruzclinic/clinic-booking/internal/middleware"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: audit}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required.")
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := h.generateSessionToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Login failed.")
		return
	}

	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(sessionTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "login",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// Me returns the parsed session claim, or null when there is no usable
// cookie. It deliberately skips the store lookup; admin routes re-verify.
func (h *AuthHandler) Me(c *gin.Context) {
	raw, err := c.Cookie(middleware.SessionCookie)
	if err != nil || raw == "" {
		c.JSON(http.StatusOK, nil)
		return
	}

	id, username, ok := middleware.ParseSessionToken(raw, h.config.SessionSecret)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       id,
		"username": username,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	httpresp.Done(c)
}

// ChangePassword re-verifies the old secret before replacing it. Runs behind
// the auth gate, so the context always carries a verified user id.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Old password and new password are required.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Failed to change password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		httperr.BadRequest(c, "invalid_old_password", "Old password is incorrect.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to change password.")
		return
	}

	if err := h.db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Failed to change password.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "password_changed",
		Entity: "user",
	})

	httpresp.DoneWithMessage(c, "Password updated successfully")
}

// --------- Session token ---------

func (h *AuthHandler) generateSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(sessionTTL).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.SessionSecret))
}
