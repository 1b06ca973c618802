package services

import (
	"context"
	"fmt"
	"strings"

	"travel-admin/models"
	"travel-admin/upstream"
)

// Earnings periods the overview supports.
const (
	PeriodToday     = "today"
	PeriodThisWeek  = "this-week"
	PeriodThisMonth = "this-month"
)

// CommissionService reads commission records, statistics, the per-period
// earnings overview, and manages the configurable rates.
type CommissionService struct {
	Up *upstream.Client
}

func NewCommissionService(up *upstream.Client) *CommissionService {
	return &CommissionService{Up: up}
}

// List fetches commissions, optionally narrowed to one booking type
// (HOTEL | VEHICLE). The ALL sentinel routes to the unfiltered listing.
func (s *CommissionService) List(ctx context.Context, bookingType string, page, size int) (upstream.Page[models.Commission], error) {
	params := upstream.NewParams().
		Add("sortBy", "createdAt").
		Add("sortDirection", "desc").
		Page(page, size)

	path := "/api/commissions"
	bookingType = strings.TrimSpace(bookingType)
	if bookingType != "" && !strings.EqualFold(bookingType, "ALL") {
		path = "/api/commissions/type/" + strings.ToUpper(bookingType)
	}
	return upstream.GetPage[models.Commission](ctx, s.Up, path, params)
}

func (s *CommissionService) Statistics(ctx context.Context) (models.CommissionStatistics, error) {
	var out models.CommissionStatistics
	err := s.Up.GetJSON(ctx, "/api/commissions/statistics", nil, &out)
	return out, err
}

// Earnings returns the overview rows for a named period.
func (s *CommissionService) Earnings(ctx context.Context, period string) ([]models.EarningsRow, error) {
	switch period {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth:
	default:
		return nil, fmt.Errorf("unknown earnings period %q", period)
	}

	var out []models.EarningsRow
	if err := s.Up.GetJSON(ctx, "/api/commissions/"+period, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.EarningsRow{}
	}
	return out, nil
}

func (s *CommissionService) Settings(ctx context.Context) ([]models.CommissionSetting, error) {
	var out []models.CommissionSetting
	if err := s.Up.GetJSON(ctx, "/api/commission-settings", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.CommissionSetting{}
	}
	return out, nil
}

// UpdateRate changes one commission rate.
func (s *CommissionService) UpdateRate(ctx context.Context, id int64, rate models.CommissionSetting) error {
	body := map[string]any{"commissionRate": rate.CommissionRate}
	return s.Up.PostJSON(ctx, fmt.Sprintf("/api/commission-settings/%d/update", id), nil, body, nil)
}
