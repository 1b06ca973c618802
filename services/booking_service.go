package services

import (
	"context"
	"fmt"

	"travel-admin/models"
	"travel-admin/upstream"
)

// BookingService lists room and vehicle bookings and cancels them. Bookings
// are otherwise read-only from the dashboard's side.
type BookingService struct {
	Up *upstream.Client
}

func NewBookingService(up *upstream.Client) *BookingService {
	return &BookingService{Up: up}
}

func bookingParams(f models.BookingFilter, room bool, page, size int) *upstream.Params {
	p := upstream.NewParams().
		Add("bookingReference", f.Reference).
		Add("paymentStatus", f.PaymentStatus)
	if room {
		p.Add("checkInDate", f.DateFrom).Add("checkOutDate", f.DateTo)
	} else {
		p.Add("startDate", f.DateFrom).Add("endDate", f.DateTo)
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortDir := f.SortDir
	if sortDir != "asc" {
		sortDir = "desc"
	}
	p.Add("sortBy", sortBy).Add("sortDir", sortDir).Page(page, size)
	return p
}

// ListRoomBookings routes to the filter endpoint only when a real filter is
// active; the unfiltered listing lives at a different path and returns a
// differently wrapped envelope, which DecodePage flattens.
func (s *BookingService) ListRoomBookings(ctx context.Context, f models.BookingFilter, page, size int) (upstream.Page[models.RoomBooking], error) {
	params := bookingParams(f, true, page, size)
	path := "/api/bookings/all"
	if params.HasFilters() {
		path = "/api/bookings/filter/advanced"
	}
	return upstream.GetPage[models.RoomBooking](ctx, s.Up, path, params)
}

func (s *BookingService) ListVehicleBookings(ctx context.Context, f models.BookingFilter, page, size int) (upstream.Page[models.VehicleBooking], error) {
	params := bookingParams(f, false, page, size)
	path := "/api/v1/bookings"
	if params.HasFilters() {
		path = "/api/v1/bookings/filter/advanced"
	}
	return upstream.GetPage[models.VehicleBooking](ctx, s.Up, path, params)
}

// CancelBooking fires the cancel action. Same endpoint for both booking
// kinds.
func (s *BookingService) CancelBooking(ctx context.Context, id int64) error {
	return s.Up.PostJSON(ctx, fmt.Sprintf("/api/bookings/%d/cancel", id), nil, nil, nil)
}
