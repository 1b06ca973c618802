package services

import (
	"context"
	"fmt"

	"travel-admin/models"
	"travel-admin/upstream"
)

// PayoutService reads vendor payouts and marks them paid.
type PayoutService struct {
	Up *upstream.Client
}

func NewPayoutService(up *upstream.Client) *PayoutService {
	return &PayoutService{Up: up}
}

func (s *PayoutService) List(ctx context.Context) ([]models.Payout, error) {
	var out []models.Payout
	if err := s.Up.GetJSON(ctx, "/api/payouts", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Payout{}
	}
	return out, nil
}

// MarkPaid fires the pending→paid transition.
func (s *PayoutService) MarkPaid(ctx context.Context, id int64) error {
	return s.Up.PostJSON(ctx, fmt.Sprintf("/api/payouts/%d/mark-paid", id), nil, nil, nil)
}
