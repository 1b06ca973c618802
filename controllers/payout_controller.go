package controllers

import (
	"log"
	"net/http"
	"strconv"

	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

type PayoutController struct {
	PayoutSvc *services.PayoutService
	AuditSvc  *services.AuditService
}

func NewPayoutController(svc *services.PayoutService, audit *services.AuditService) *PayoutController {
	return &PayoutController{PayoutSvc: svc, AuditSvc: audit}
}

func (ctrl *PayoutController) GetPayouts(c *gin.Context) {
	payouts, err := ctrl.PayoutSvc.List(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch payouts: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payouts)
}

// MarkPaid flips a pending payout to paid.
func (ctrl *PayoutController) MarkPaid(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payout id")
		return
	}

	if err := ctrl.PayoutSvc.MarkPaid(c.Request.Context(), id); err != nil {
		log.Printf("❌ Failed to mark payout %d as paid: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "mark-paid", "payout", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Payout marked as paid"})
}
