package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-admin/models"
	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	VehicleSvc *services.VehicleService
	AuditSvc   *services.AuditService
}

func NewVehicleController(svc *services.VehicleService, audit *services.AuditService) *VehicleController {
	return &VehicleController{VehicleSvc: svc, AuditSvc: audit}
}

func (ctrl *VehicleController) GetVehicles(c *gin.Context) {
	page, size := parsePaging(c)
	result, err := ctrl.VehicleSvc.List(
		c.Request.Context(),
		c.Query("search"),
		c.Query("status"),
		c.Query("type"),
		c.Query("sort"),
		page, size,
	)
	if err != nil {
		log.Printf("❌ Failed to fetch vehicles: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (ctrl *VehicleController) GetVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	vehicle, err := ctrl.VehicleSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, vehicle)
}

func validateVehicle(v models.Vehicle) string {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return "name is required"
	case strings.TrimSpace(v.VehicleNumber) == "":
		return "vehicleNumber is required"
	case strings.TrimSpace(v.Type) == "":
		return "type is required"
	}
	return ""
}

// SaveVehicle handles create and edit: "vehicle" JSON part plus an optional
// "image" thumbnail. New listings default to Pending.
func (ctrl *VehicleController) SaveVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := bindJSONPart(c, "vehicle", &vehicle); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateVehicle(vehicle); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "Please fill in all required fields: "+msg)
		return
	}
	if vehicle.Status == "" {
		vehicle.Status = models.StatusPending
	}

	image, err := filePart(c, "image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read image upload")
		return
	}

	isEdit := vehicle.ID != 0
	saved, err := ctrl.VehicleSvc.Save(c.Request.Context(), vehicle, image)
	if err != nil {
		log.Printf("❌ Failed to save vehicle %q: %v", vehicle.Name, err)
		respondUpstreamError(c, err)
		return
	}

	action := "create"
	message := "Vehicle created successfully"
	code := http.StatusCreated
	if isEdit {
		action = "update"
		message = "Vehicle updated successfully"
		code = http.StatusOK
	}
	ctrl.AuditSvc.Record(actorEmail(c), action, "vehicle", strconv.FormatInt(saved.ID, 10), gin.H{"name": saved.Name})
	utils.JSONSuccess(c, code, gin.H{"message": message, "vehicle": saved})
}

// UpdateVehicleStatus approves or rejects a vehicle; rejecting an approved
// vehicle is refused with 409.
func (ctrl *VehicleController) UpdateVehicleStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	status := c.Query("status")
	if !models.IsListingStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be Pending, Approved or Rejected")
		return
	}

	updated, err := ctrl.VehicleSvc.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		log.Printf("❌ Failed to update vehicle %d status: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "status", "vehicle", strconv.FormatInt(id, 10), gin.H{"status": status})
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *VehicleController) DeleteVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	if err := ctrl.VehicleSvc.Delete(c.Request.Context(), id); err != nil {
		log.Printf("❌ Failed to delete vehicle %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "delete", "vehicle", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
