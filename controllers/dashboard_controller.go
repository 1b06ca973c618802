package controllers

import (
	"log"
	"net/http"
	"strconv"

	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
	AuditSvc     *services.AuditService
}

func NewDashboardController(svc *services.DashboardService, audit *services.AuditService) *DashboardController {
	return &DashboardController{DashboardSvc: svc, AuditSvc: audit}
}

func (ctrl *DashboardController) GetStats(c *gin.Context) {
	stats, err := ctrl.DashboardSvc.Stats(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch dashboard stats: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GetRecentActivity lists the latest admin actions recorded locally.
func (ctrl *DashboardController) GetRecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := ctrl.AuditSvc.Recent(limit)
	if err != nil {
		log.Printf("❌ Failed to fetch audit entries: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load recent activity")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}
