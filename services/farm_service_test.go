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

func TestListFarmBookingsStatusRouting(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"content":[],"totalElements":0,"totalPages":0,"number":0}`)
	}))
	defer srv.Close()

	svc := NewFarmService(upstream.NewClient(srv.URL))

	_, err := svc.ListBookings(context.Background(), "ALL", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "/api/farm-bookings/all", gotPath)

	_, err = svc.ListBookings(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "/api/farm-bookings/all", gotPath)

	_, err = svc.ListBookings(context.Background(), "CONFIRMED", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "/api/farm-bookings/by-status/CONFIRMED", gotPath)
}

func TestFarmSaveEditUsesWithImagesEndpoint(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, `{"id":6,"name":"Green Acres"}`)
	}))
	defer srv.Close()

	svc := NewFarmService(upstream.NewClient(srv.URL))

	_, err := svc.Save(context.Background(), models.Farm{Name: "Green Acres"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/farms", gotPath)

	_, err = svc.Save(context.Background(), models.Farm{ID: 6, Name: "Green Acres"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/farms/6/with-images", gotPath)
}

func TestFarmStatisticsParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"totalBookings":3,"totalRevenue":"1200.50"}`)
	}))
	defer srv.Close()

	svc := NewFarmService(upstream.NewClient(srv.URL))

	stats, err := svc.Statistics(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, []string{"FARM"}, gotQuery["bookingType"])
	assert.Equal(t, []string{"2026-01-01"}, gotQuery["startDate"])
	assert.Equal(t, 3, stats.TotalBookings)
}
