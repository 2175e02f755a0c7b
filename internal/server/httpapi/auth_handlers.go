package httpapi

import (
	"net/http"

	"github.com/burgerlab/backend/internal/obs"
	"github.com/burgerlab/backend/internal/server/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		obs.CountAuth("login", "failure")
		respondError(c, err)
		return
	}

	obs.CountAuth("login", "success")
	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// Forgot starts the reset flow. The response is identical whether or not
// the email is registered.
func (h *AuthHandler) Forgot(c *gin.Context) {
	var req forgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.auth.RequestReset(c.Request.Context(), req.Email); err != nil {
		obs.CountAuth("reset_request", "failure")
		respondError(c, err)
		return
	}

	obs.CountAuth("reset_request", "accepted")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Reset completes the flow with a mailed token.
func (h *AuthHandler) Reset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.auth.CompleteReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		obs.CountAuth("reset_complete", "failure")
		respondError(c, err)
		return
	}

	obs.CountAuth("reset_complete", "success")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ChangePassword updates the password of the authenticated user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHENTICATED"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
