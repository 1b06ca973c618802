package services

import (
	"context"
	"fmt"
	"net/http"

	"travel-admin/models"
	"travel-admin/upstream"
)

// VehicleService manages vehicle listings.
type VehicleService struct {
	Up *upstream.Client
}

func NewVehicleService(up *upstream.Client) *VehicleService {
	return &VehicleService{Up: up}
}

func (s *VehicleService) List(ctx context.Context, search, status, vehicleType, sort string, page, size int) (upstream.Page[models.Vehicle], error) {
	params := upstream.NewParams().
		Add("search", search).
		Add("status", status).
		Add("type", vehicleType).
		Add("sort", sort).
		Page(page, size)
	return upstream.GetPage[models.Vehicle](ctx, s.Up, "/api/v1/vehicles", params)
}

func (s *VehicleService) Get(ctx context.Context, id int64) (models.Vehicle, error) {
	var out models.Vehicle
	err := s.Up.GetJSON(ctx, fmt.Sprintf("/api/v1/vehicles/%d", id), nil, &out)
	return out, err
}

// Save creates or updates a vehicle: JSON part "vehicle", thumbnail under
// "image".
func (s *VehicleService) Save(ctx context.Context, v models.Vehicle, image *upstream.FilePart) (models.Vehicle, error) {
	var files []upstream.FilePart
	if image != nil {
		files = append(files, *image)
	}

	method := http.MethodPost
	path := "/api/v1/vehicles"
	if v.ID != 0 {
		method = http.MethodPut
		path = fmt.Sprintf("/api/v1/vehicles/%d", v.ID)
	}

	var saved models.Vehicle
	if err := s.Up.SubmitMultipart(ctx, method, path, "vehicle", v, files, &saved); err != nil {
		return models.Vehicle{}, err
	}
	return saved, nil
}

// UpdateStatus approves or rejects a vehicle. A vehicle already approved
// cannot be rejected anymore; the transition guard enforces that before the
// backend is touched.
func (s *VehicleService) UpdateStatus(ctx context.Context, id int64, status string) (models.Vehicle, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Vehicle{}, err
	}
	if !models.CanTransitionListing(current.Status, status) {
		return models.Vehicle{}, fmt.Errorf("%w: vehicle %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	params := upstream.NewParams().Add("status", status)
	if err := s.Up.PatchJSON(ctx, fmt.Sprintf("/api/v1/vehicles/%d/status", id), params, nil, nil); err != nil {
		return models.Vehicle{}, err
	}
	current.Status = status
	return current, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	return s.Up.Delete(ctx, fmt.Sprintf("/api/v1/vehicles/%d", id))
}
