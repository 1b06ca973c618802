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

type PropertyController struct {
	PropertySvc *services.PropertyService
	AuditSvc    *services.AuditService
}

func NewPropertyController(svc *services.PropertyService, audit *services.AuditService) *PropertyController {
	return &PropertyController{PropertySvc: svc, AuditSvc: audit}
}

// GetProperties lists hotels with the screen's filter set.
func (ctrl *PropertyController) GetProperties(c *gin.Context) {
	page, size := parsePaging(c)
	result, err := ctrl.PropertySvc.List(
		c.Request.Context(),
		c.Query("search"),
		c.Query("status"),
		c.Query("sort"),
		page, size,
	)
	if err != nil {
		log.Printf("❌ Failed to fetch properties: %v", err)
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}
	property, err := ctrl.PropertySvc.Get(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func validateProperty(p models.Property) string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "name is required"
	case strings.TrimSpace(p.Address) == "":
		return "address is required"
	case strings.TrimSpace(p.City) == "":
		return "city is required"
	case strings.TrimSpace(p.Type) == "":
		return "type is required"
	case strings.TrimSpace(p.Admin) == "":
		return "admin is required"
	}
	return ""
}

// SaveProperty handles create and edit through one multipart path: the
// "hotel" JSON part plus an optional "image" thumbnail. Validation runs
// before anything is sent to the backend.
func (ctrl *PropertyController) SaveProperty(c *gin.Context) {
	var property models.Property
	if err := bindJSONPart(c, "hotel", &property); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateProperty(property); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "Please fill in all required fields: "+msg)
		return
	}

	image, err := filePart(c, "image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read image upload")
		return
	}

	isEdit := property.ID != 0
	saved, err := ctrl.PropertySvc.Save(c.Request.Context(), property, image)
	if err != nil {
		log.Printf("❌ Failed to save property %q: %v", property.Name, err)
		respondUpstreamError(c, err)
		return
	}

	action := "create"
	message := "Property created successfully"
	code := http.StatusCreated
	if isEdit {
		action = "update"
		message = "Property updated successfully"
		code = http.StatusOK
	}
	ctrl.AuditSvc.Record(actorEmail(c), action, "property", strconv.FormatInt(saved.ID, 10), gin.H{"name": saved.Name})
	utils.JSONSuccess(c, code, gin.H{"message": message, "property": saved})
}

func validateRoom(r models.Room) string {
	switch {
	case strings.TrimSpace(r.RoomType) == "":
		return "roomType is required"
	case strings.TrimSpace(r.BedType) == "":
		return "bedType is required"
	case !r.PricePerNight.IsPositive():
		return "pricePerNight must be greater than zero"
	}
	return ""
}

// SaveRoom handles room create/edit under a hotel: "room" JSON part plus
// repeated "images" files.
func (ctrl *PropertyController) SaveRoom(c *gin.Context) {
	var room models.Room
	if err := bindJSONPart(c, "room", &room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateRoom(room); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "Please fill in all required fields: "+msg)
		return
	}

	images, err := fileParts(c, "images")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read image uploads")
		return
	}

	isEdit := room.ID != 0
	saved, err := ctrl.PropertySvc.SaveRoom(c.Request.Context(), room, images)
	if err != nil {
		log.Printf("❌ Failed to save room for hotel %d: %v", room.HotelID, err)
		respondUpstreamError(c, err)
		return
	}

	message := "Room created successfully"
	code := http.StatusCreated
	if isEdit {
		message = "Room updated successfully"
		code = http.StatusOK
	}
	ctrl.AuditSvc.Record(actorEmail(c), "save", "room", strconv.FormatInt(saved.ID, 10), gin.H{"hotelId": room.HotelID})
	utils.JSONSuccess(c, code, gin.H{"message": message, "room": saved})
}

// UpdatePropertyStatus approves or rejects a listing.
func (ctrl *PropertyController) UpdatePropertyStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}
	status := c.Query("status")
	if !models.IsListingStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be Pending, Approved or Rejected")
		return
	}

	updated, err := ctrl.PropertySvc.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		log.Printf("❌ Failed to update property %d status: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "status", "property", strconv.FormatInt(id, 10), gin.H{"status": status})
	utils.JSONSuccess(c, http.StatusOK, updated)
}

type approvalPayload struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ToggleApproval flips a listing's approval flag on or off.
func (ctrl *PropertyController) ToggleApproval(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	var payload approvalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "approved is required")
		return
	}

	if err := ctrl.PropertySvc.ToggleApproval(c.Request.Context(), id, *payload.Approved); err != nil {
		log.Printf("❌ Failed to toggle approval for property %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "approval-toggle", "property", strconv.FormatInt(id, 10), gin.H{"approved": *payload.Approved})
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Approval status updated"})
}

func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := ctrl.PropertySvc.Delete(c.Request.Context(), id); err != nil {
		log.Printf("❌ Failed to delete property %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "delete", "property", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
