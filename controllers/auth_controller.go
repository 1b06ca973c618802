package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

type verifyOTPPayload struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// SendOTP asks the backend to send the one-time code to the admin address.
// The backend's status message is relayed verbatim.
func (ctrl *AuthController) SendOTP(c *gin.Context) {
	message, err := ctrl.AuthSvc.RequestCode(c.Request.Context())
	if err != nil {
		log.Printf("❌ OTP send failed: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": message})
}

// VerifyOTP exchanges email+code for a session token.
func (ctrl *AuthController) VerifyOTP(c *gin.Context) {
	var payload verifyOTPPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and otp are required")
		return
	}

	token, err := ctrl.AuthSvc.VerifyCode(c.Request.Context(), payload.Email, payload.OTP)
	if err != nil {
		if errors.Is(err, services.ErrOTPRejected) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid OTP")
			return
		}
		log.Printf("❌ OTP verification failed: %v", err)
		respondUpstreamError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token})
}

// Logout revokes the caller's session token.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing token")
		return
	}
	if err := ctrl.AuthSvc.Logout(token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// GetSession returns the caller's session, or 401.
func (ctrl *AuthController) GetSession(c *gin.Context) {
	session, err := ctrl.AuthSvc.Session(bearerToken(c))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
