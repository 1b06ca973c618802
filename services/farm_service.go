package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"travel-admin/models"
	"travel-admin/upstream"
)

// FarmService manages farm-stay listings and their bookings/statistics.
type FarmService struct {
	Up *upstream.Client
}

func NewFarmService(up *upstream.Client) *FarmService {
	return &FarmService{Up: up}
}

func (s *FarmService) List(ctx context.Context, page, size int) (upstream.Page[models.Farm], error) {
	params := upstream.NewParams().
		Add("sortBy", "id").
		Add("sortDir", "asc").
		Page(page, size)
	return upstream.GetPage[models.Farm](ctx, s.Up, "/api/farms", params)
}

// Save creates or updates a farm: JSON part "farm", photos under "images".
// The edit endpoint is the backend's /with-images variant.
func (s *FarmService) Save(ctx context.Context, f models.Farm, images []upstream.FilePart) (models.Farm, error) {
	method := http.MethodPost
	path := "/api/farms"
	if f.ID != 0 {
		method = http.MethodPut
		path = fmt.Sprintf("/api/farms/%d/with-images", f.ID)
	}

	var saved models.Farm
	if err := s.Up.SubmitMultipart(ctx, method, path, "farm", f, images, &saved); err != nil {
		return models.Farm{}, err
	}
	return saved, nil
}

func (s *FarmService) Delete(ctx context.Context, id int64) error {
	return s.Up.Delete(ctx, fmt.Sprintf("/api/farms/%d", id))
}

// ListBookings lists farm bookings, optionally narrowed to one status. The
// ALL sentinel routes to the unfiltered listing.
func (s *FarmService) ListBookings(ctx context.Context, status string, page, size int) (upstream.Page[models.FarmBooking], error) {
	params := upstream.NewParams().
		Add("sortBy", "createdAt").
		Add("sortDir", "desc").
		Page(page, size)

	path := "/api/farm-bookings/all"
	status = strings.TrimSpace(status)
	if status != "" && !strings.EqualFold(status, "ALL") {
		path = "/api/farm-bookings/by-status/" + status
	}
	return upstream.GetPage[models.FarmBooking](ctx, s.Up, path, params)
}

func (s *FarmService) GetBookingByReference(ctx context.Context, reference string) (models.FarmBooking, error) {
	var out models.FarmBooking
	err := s.Up.GetJSON(ctx, "/api/farm-bookings/"+reference, nil, &out)
	return out, err
}

// Statistics returns the aggregate block for a date range.
func (s *FarmService) Statistics(ctx context.Context, startDate, endDate string) (models.FarmStatistics, error) {
	params := upstream.NewParams().
		Add("bookingType", "FARM").
		Add("startDate", startDate).
		Add("endDate", endDate)

	var out models.FarmStatistics
	err := s.Up.GetJSON(ctx, "/api/farm-bookings/statistics", params, &out)
	return out, err
}

// CommissionTotal returns the commission sum for a date range.
func (s *FarmService) CommissionTotal(ctx context.Context, startDate, endDate string) (models.FarmCommissionTotal, error) {
	params := upstream.NewParams().
		Add("startDate", startDate).
		Add("endDate", endDate)

	var out models.FarmCommissionTotal
	err := s.Up.GetJSON(ctx, "/api/farm-bookings/commission/total", params, &out)
	return out, err
}
