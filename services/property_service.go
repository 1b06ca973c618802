package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"travel-admin/models"
	"travel-admin/upstream"
)

// ErrInvalidTransition is returned when a status change is not allowed from
// the listing's current status (e.g. rejecting an approved listing).
var ErrInvalidTransition = errors.New("invalid status transition")

// PropertyService manages hotel listings and their rooms.
type PropertyService struct {
	Up *upstream.Client
}

func NewPropertyService(up *upstream.Client) *PropertyService {
	return &PropertyService{Up: up}
}

// List fetches a page of hotels. The hotels endpoint wraps its envelope in a
// "data" object; DecodePage flattens it.
func (s *PropertyService) List(ctx context.Context, search, status, sort string, page, size int) (upstream.Page[models.Property], error) {
	params := upstream.NewParams().
		Add("search", search).
		Add("status", status).
		Add("sort", sort).
		Page(page, size)
	return upstream.GetPage[models.Property](ctx, s.Up, "/api/v1/hotels", params)
}

func (s *PropertyService) Get(ctx context.Context, id int64) (models.Property, error) {
	var out models.Property
	err := s.Up.GetJSON(ctx, fmt.Sprintf("/api/v1/hotels/%d", id), nil, &out)
	return out, err
}

// Save creates or updates a hotel: the JSON goes under the "hotel" part, the
// thumbnail (if any) under "image". Id presence picks the verb and endpoint.
func (s *PropertyService) Save(ctx context.Context, p models.Property, image *upstream.FilePart) (models.Property, error) {
	var files []upstream.FilePart
	if image != nil {
		files = append(files, *image)
	}

	method := http.MethodPost
	path := "/api/v1/hotels"
	if p.ID != 0 {
		method = http.MethodPut
		path = fmt.Sprintf("/api/v1/hotels/update/%d", p.ID)
	}

	var saved models.Property
	if err := s.Up.SubmitMultipart(ctx, method, path, "hotel", p, files, &saved); err != nil {
		return models.Property{}, err
	}
	return saved, nil
}

// SaveRoom creates or updates a room under a hotel through the same
// multipart contract, JSON part "room", files under "images".
func (s *PropertyService) SaveRoom(ctx context.Context, r models.Room, images []upstream.FilePart) (models.Room, error) {
	method := http.MethodPost
	path := "/api/v1/rooms1"
	if r.ID != 0 {
		method = http.MethodPut
		path = fmt.Sprintf("/api/v1/rooms1/%d", r.ID)
	}

	var saved models.Room
	if err := s.Up.SubmitMultipart(ctx, method, path, "room", r, images, &saved); err != nil {
		return models.Room{}, err
	}
	return saved, nil
}

// UpdateStatus moves a listing to Approved/Rejected, guarded by the
// transition rules: once approved, a reject is refused.
func (s *PropertyService) UpdateStatus(ctx context.Context, id int64, status string) (models.Property, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if !models.CanTransitionListing(current.Status, status) {
		return models.Property{}, fmt.Errorf("%w: property %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	body := map[string]string{"status": status}
	if err := s.Up.PatchJSON(ctx, fmt.Sprintf("/api/v1/hotels/update-status/%d", id), nil, body, nil); err != nil {
		return models.Property{}, err
	}
	current.Status = status
	return current, nil
}

// ToggleApproval flips the listing's approval flag.
func (s *PropertyService) ToggleApproval(ctx context.Context, id int64, approved bool) error {
	body := map[string]bool{"approved": approved}
	return s.Up.PutJSON(ctx, fmt.Sprintf("/api/v1/hotels/%d/approval-toggle", id), nil, body, nil)
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	return s.Up.Delete(ctx, fmt.Sprintf("/api/v1/hotels/%d", id))
}
