package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-admin/models"
	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

// SettingsController manages the property-login credentials shown on the
// settings screen.
type SettingsController struct {
	CredentialSvc *services.CredentialService
	AuditSvc      *services.AuditService
}

func NewSettingsController(svc *services.CredentialService, audit *services.AuditService) *SettingsController {
	return &SettingsController{CredentialSvc: svc, AuditSvc: audit}
}

func (ctrl *SettingsController) GetCredentials(c *gin.Context) {
	creds, err := ctrl.CredentialSvc.List(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch login credentials: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, creds)
}

func validateCredential(cred models.LoginCredential) string {
	switch {
	case strings.TrimSpace(cred.Email) == "":
		return "email is required"
	case strings.TrimSpace(cred.Password) == "":
		return "password is required"
	case strings.TrimSpace(cred.HotelName) == "":
		return "hotel name is required"
	}
	return ""
}

func (ctrl *SettingsController) CreateCredential(c *gin.Context) {
	var cred models.LoginCredential
	if err := c.ShouldBindJSON(&cred); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid credential payload")
		return
	}
	if msg := validateCredential(cred); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	if err := ctrl.CredentialSvc.Save(c.Request.Context(), cred); err != nil {
		log.Printf("❌ Failed to save login credential: %v", err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "create", "credential", cred.Email, nil)
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"message": "Credential created successfully"})
}

func (ctrl *SettingsController) UpdateCredential(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid credential id")
		return
	}

	var cred models.LoginCredential
	if err := c.ShouldBindJSON(&cred); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid credential payload")
		return
	}
	if msg := validateCredential(cred); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	if err := ctrl.CredentialSvc.Update(c.Request.Context(), id, cred); err != nil {
		log.Printf("❌ Failed to update login credential %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "update", "credential", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Credential updated successfully"})
}

func (ctrl *SettingsController) DeleteCredential(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid credential id")
		return
	}

	if err := ctrl.CredentialSvc.Delete(c.Request.Context(), id); err != nil {
		log.Printf("❌ Failed to delete login credential %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "delete", "credential", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Credential deleted successfully"})
}
