package services

import (
	"context"
	"fmt"

	"travel-admin/models"
	"travel-admin/upstream"
)

// CredentialService proxies the property-login records the settings screen
// manages. The backend owns them; the gateway only relays.
type CredentialService struct {
	Up *upstream.Client
}

func NewCredentialService(up *upstream.Client) *CredentialService {
	return &CredentialService{Up: up}
}

func (s *CredentialService) List(ctx context.Context) ([]models.LoginCredential, error) {
	var out []models.LoginCredential
	if err := s.Up.GetJSON(ctx, "/api/property-login/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.LoginCredential{}
	}
	return out, nil
}

func (s *CredentialService) Save(ctx context.Context, cred models.LoginCredential) error {
	return s.Up.PostJSON(ctx, "/api/property-login/save", nil, cred, nil)
}

func (s *CredentialService) Update(ctx context.Context, id int64, cred models.LoginCredential) error {
	return s.Up.PutJSON(ctx, fmt.Sprintf("/api/property-login/update/%d", id), nil, cred, nil)
}

func (s *CredentialService) Delete(ctx context.Context, id int64) error {
	return s.Up.Delete(ctx, fmt.Sprintf("/api/property-login/delete/%d", id))
}
