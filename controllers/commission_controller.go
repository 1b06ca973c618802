package controllers

import (
	"log"
	"net/http"
	"strconv"

	"travel-admin/models"
	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

type CommissionController struct {
	CommissionSvc *services.CommissionService
	AuditSvc      *services.AuditService
}

func NewCommissionController(svc *services.CommissionService, audit *services.AuditService) *CommissionController {
	return &CommissionController{CommissionSvc: svc, AuditSvc: audit}
}

func (ctrl *CommissionController) GetCommissions(c *gin.Context) {
	page, size := parsePaging(c)
	result, err := ctrl.CommissionSvc.List(c.Request.Context(), c.Query("type"), page, size)
	if err != nil {
		log.Printf("❌ Failed to fetch commissions: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (ctrl *CommissionController) GetStatistics(c *gin.Context) {
	stats, err := ctrl.CommissionSvc.Statistics(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GetEarnings returns the overview rows for ?period=today|this-week|this-month.
func (ctrl *CommissionController) GetEarnings(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodThisMonth)
	switch period {
	case services.PeriodToday, services.PeriodThisWeek, services.PeriodThisMonth:
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown earnings period")
		return
	}

	rows, err := ctrl.CommissionSvc.Earnings(c.Request.Context(), period)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (ctrl *CommissionController) GetSettings(c *gin.Context) {
	settings, err := ctrl.CommissionSvc.Settings(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}

// UpdateSettingRate changes one commission rate.
func (ctrl *CommissionController) UpdateSettingRate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid setting id")
		return
	}

	var payload models.CommissionSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "commissionRate is required")
		return
	}

	if err := ctrl.CommissionSvc.UpdateRate(c.Request.Context(), id, payload); err != nil {
		log.Printf("❌ Failed to update commission rate %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "update-rate", "commission-setting", strconv.FormatInt(id, 10),
		gin.H{"commissionRate": payload.CommissionRate})
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Commission rate updated successfully"})
}
