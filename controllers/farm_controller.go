package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-admin/models"
	"travel-admin/services"
	"travel-admin/upstream"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

type FarmController struct {
	FarmSvc  *services.FarmService
	AuditSvc *services.AuditService
}

func NewFarmController(svc *services.FarmService, audit *services.AuditService) *FarmController {
	return &FarmController{FarmSvc: svc, AuditSvc: audit}
}

func (ctrl *FarmController) GetFarms(c *gin.Context) {
	page, size := parsePaging(c)
	result, err := ctrl.FarmSvc.List(c.Request.Context(), page, size)
	if err != nil {
		log.Printf("❌ Failed to fetch farms: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func validateFarm(f models.Farm) string {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return "name is required"
	case strings.TrimSpace(f.Location) == "":
		return "location is required"
	}
	return ""
}

// SaveFarm handles create and edit: "farm" JSON part plus repeated "images"
// files.
func (ctrl *FarmController) SaveFarm(c *gin.Context) {
	var farm models.Farm
	if err := bindJSONPart(c, "farm", &farm); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateFarm(farm); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "Please fill in all required fields: "+msg)
		return
	}

	images, err := fileParts(c, "images")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read image uploads")
		return
	}

	isEdit := farm.ID != 0
	saved, err := ctrl.FarmSvc.Save(c.Request.Context(), farm, images)
	if err != nil {
		log.Printf("❌ Failed to save farm %q: %v", farm.Name, err)
		respondUpstreamError(c, err)
		return
	}

	action := "create"
	message := "Farm created successfully"
	code := http.StatusCreated
	if isEdit {
		action = "update"
		message = "Farm updated successfully"
		code = http.StatusOK
	}
	ctrl.AuditSvc.Record(actorEmail(c), action, "farm", strconv.FormatInt(saved.ID, 10), gin.H{"name": saved.Name})
	utils.JSONSuccess(c, code, gin.H{"message": message, "farm": saved})
}

func (ctrl *FarmController) DeleteFarm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid farm id")
		return
	}

	if err := ctrl.FarmSvc.Delete(c.Request.Context(), id); err != nil {
		log.Printf("❌ Failed to delete farm %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "delete", "farm", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Farm deleted successfully"})
}

// GetFarmBookings lists farm bookings, optionally by status.
func (ctrl *FarmController) GetFarmBookings(c *gin.Context) {
	page, size := parsePaging(c)
	result, err := ctrl.FarmSvc.ListBookings(c.Request.Context(), c.Query("status"), page, size)
	if err != nil {
		log.Printf("❌ Failed to fetch farm bookings: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (ctrl *FarmController) GetFarmBooking(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))
	if reference == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing booking reference")
		return
	}
	booking, err := ctrl.FarmSvc.GetBookingByReference(c.Request.Context(), reference)
	if err != nil {
		if upstream.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "no booking with reference "+reference)
			return
		}
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *FarmController) GetFarmStatistics(c *gin.Context) {
	stats, err := ctrl.FarmSvc.Statistics(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ctrl *FarmController) GetFarmCommissionTotal(c *gin.Context) {
	total, err := ctrl.FarmSvc.CommissionTotal(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, total)
}
