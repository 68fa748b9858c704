package handlers

import (
	"net/http"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/auth"
	"findmylocal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler runs the OTP sign-in, admin login and session lookups.
type AuthHandler struct {
	Auth   auth.AuthService
	Users  user.UserService
	Logger *zap.Logger
}

func NewAuthHandler(authSvc auth.AuthService, users user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: authSvc, Users: users, Logger: logger}
}

// SendOTP handles POST /api/auth/send-otp.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.Logger, "SendOTP", err)
		return
	}
	if err := h.Auth.SendOTP(c.Request.Context(), req); err != nil {
		respondError(c, h.Logger, "SendOTP", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.Logger, "VerifyOTP", err)
		return
	}
	resp, err := h.Auth.VerifyOTP(c.Request.Context(), middleware.GetClientID(c), req)
	if err != nil {
		respondError(c, h.Logger, "VerifyOTP", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminLogin handles POST /api/auth/admin.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.Logger, "AdminLogin", err)
		return
	}
	resp, err := h.Auth.AdminLogin(c.Request.Context(), middleware.GetClientID(c), req)
	if err != nil {
		respondError(c, h.Logger, "AdminLogin", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession handles GET /api/auth/session.
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.Users.Session(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		respondError(c, h.Logger, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Logout handles DELETE /api/auth/session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Users.ClearSession(c.Request.Context(), middleware.GetClientID(c)); err != nil {
		respondError(c, h.Logger, "Logout", err)
		return
	}
	c.Status(http.StatusNoContent)
}
