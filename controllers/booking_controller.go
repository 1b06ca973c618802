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

type BookingController struct {
	BookingSvc *services.BookingService
	AuditSvc   *services.AuditService
}

func NewBookingController(svc *services.BookingService, audit *services.AuditService) *BookingController {
	return &BookingController{BookingSvc: svc, AuditSvc: audit}
}

func bookingFilterFromQuery(c *gin.Context) models.BookingFilter {
	return models.BookingFilter{
		Reference:     c.Query("search"),
		PaymentStatus: c.Query("paymentStatus"),
		DateFrom:      c.Query("dateFrom"),
		DateTo:        c.Query("dateTo"),
		SortBy:        c.Query("sortBy"),
		SortDir:       c.Query("sortDir"),
	}
}

// GetBookings lists room or vehicle bookings depending on ?type=.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	page, size := parsePaging(c)
	filter := bookingFilterFromQuery(c)

	switch c.DefaultQuery("type", "room") {
	case "vehicle":
		result, err := ctrl.BookingSvc.ListVehicleBookings(c.Request.Context(), filter, page, size)
		if err != nil {
			log.Printf("❌ Failed to fetch vehicle bookings: %v", err)
			respondUpstreamError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, result)
	case "room":
		result, err := ctrl.BookingSvc.ListRoomBookings(c.Request.Context(), filter, page, size)
		if err != nil {
			log.Printf("❌ Failed to fetch room bookings: %v", err)
			respondUpstreamError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, result)
	default:
		utils.JSONError(c, http.StatusBadRequest, "type must be room or vehicle")
	}
}

// CancelBooking fires the single mutation the booking screen has.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := ctrl.BookingSvc.CancelBooking(c.Request.Context(), id); err != nil {
		log.Printf("❌ Failed to cancel booking %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	ctrl.AuditSvc.Record(actorEmail(c), "cancel", "booking", strconv.FormatInt(id, 10), nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}
