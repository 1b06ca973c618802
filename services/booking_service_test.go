package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-admin/models"
	"travel-admin/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoomBookingsUnfiltered(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"content":[{"id":1,"bookingReference":"BK-1"}],"totalElements":1,"totalPages":1,"number":0}`)
	}))
	defer srv.Close()

	svc := NewBookingService(upstream.NewClient(srv.URL))

	page, err := svc.ListRoomBookings(context.Background(), models.BookingFilter{}, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, "/api/bookings/all", gotPath)
	assert.NotContains(t, gotQuery, "bookingReference")
	assert.Equal(t, []string{"createdAt"}, gotQuery["sortBy"])
	assert.Equal(t, []string{"desc"}, gotQuery["sortDir"])
	require.Len(t, page.Content, 1)
	assert.Equal(t, "BK-1", page.Content[0].BookingReference)
}

func TestListRoomBookingsFilteredRoutesToAdvanced(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		// the filtered endpoint nests the envelope under "bookings"
		io.WriteString(w, `{"bookings":{"content":[{"id":2,"bookingReference":"BK-2"}],"totalElements":8,"totalPages":4,"number":1}}`)
	}))
	defer srv.Close()

	svc := NewBookingService(upstream.NewClient(srv.URL))

	filter := models.BookingFilter{
		Reference:     "BK-2",
		PaymentStatus: "PAID",
		DateFrom:      "2026-01-01",
		DateTo:        "2026-01-31",
	}
	page, err := svc.ListRoomBookings(context.Background(), filter, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "/api/bookings/filter/advanced", gotPath)
	assert.Equal(t, []string{"BK-2"}, gotQuery["bookingReference"])
	assert.Equal(t, []string{"PAID"}, gotQuery["paymentStatus"])
	assert.Equal(t, []string{"2026-01-01"}, gotQuery["checkInDate"])
	assert.Equal(t, []string{"2026-01-31"}, gotQuery["checkOutDate"])

	assert.Equal(t, int64(8), page.TotalElements)
	assert.Equal(t, 1, page.Number)
	assert.True(t, page.HasNext())
}

func TestListRoomBookingsAllSentinelStaysUnfiltered(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"content":[],"totalElements":0,"totalPages":0,"number":0}`)
	}))
	defer srv.Close()

	svc := NewBookingService(upstream.NewClient(srv.URL))

	_, err := svc.ListRoomBookings(context.Background(), models.BookingFilter{PaymentStatus: "All"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "/api/bookings/all", gotPath)
}

func TestListVehicleBookingsUsesDateRangeKeys(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"content":[],"totalElements":0,"totalPages":0,"number":0}`)
	}))
	defer srv.Close()

	svc := NewBookingService(upstream.NewClient(srv.URL))

	filter := models.BookingFilter{DateFrom: "2026-02-01", DateTo: "2026-02-07"}
	_, err := svc.ListVehicleBookings(context.Background(), filter, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/bookings/filter/advanced", gotPath)
	assert.Equal(t, []string{"2026-02-01"}, gotQuery["startDate"])
	assert.Equal(t, []string{"2026-02-07"}, gotQuery["endDate"])
}

func TestCancelBookingPostsToCancelAction(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, `{"message":"cancelled"}`)
	}))
	defer srv.Close()

	svc := NewBookingService(upstream.NewClient(srv.URL))

	require.NoError(t, svc.CancelBooking(context.Background(), 42))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/bookings/42/cancel", gotPath)
}
