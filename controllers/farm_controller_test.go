package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-admin/services"
	"travel-admin/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newFarmRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := NewFarmController(
		services.NewFarmService(upstream.NewClient(upstreamURL)),
		services.NewAuditService(newTestDB(t)),
	)

	r := gin.New()
	r.GET("/api/farm-bookings/:reference", ctrl.GetFarmBooking)
	return r
}

func TestGetFarmBookingUnknownReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"booking not found"}`)
	}))
	defer srv.Close()

	router := newFarmRouter(t, srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/farm-bookings/FB-MISSING", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "FB-MISSING")
}

func TestGetFarmBookingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/farm-bookings/FB-1001", r.URL.Path)
		io.WriteString(w, `{"id":1,"bookingReference":"FB-1001","farmName":"Green Acres"}`)
	}))
	defer srv.Close()

	router := newFarmRouter(t, srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/farm-bookings/FB-1001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Green Acres")
}
