package services

import (
	"context"

	"travel-admin/models"
	"travel-admin/upstream"
)

// DashboardService reads the landing-page stats document.
type DashboardService struct {
	Up *upstream.Client
}

func NewDashboardService(up *upstream.Client) *DashboardService {
	return &DashboardService{Up: up}
}

func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := s.Up.GetStats(ctx, "/api/dashboard/stats", &out)
	if out.RecentActivities == nil {
		out.RecentActivities = []any{}
	}
	return out, err
}
