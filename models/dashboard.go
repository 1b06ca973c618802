package models

import "github.com/shopspring/decimal"

// DashboardStats is the landing-page stats document.
type DashboardStats struct {
	TotalBookings       int             `json:"totalBookings"`
	TotalUsers          int             `json:"totalUsers"`
	TotalHotels         int             `json:"totalHotels"`
	TotalVehicles       int             `json:"totalVehicles"`
	TotalHotelRevenue   decimal.Decimal `json:"totalHotelRevenue"`
	TotalVehicleRevenue decimal.Decimal `json:"totalVehicleRevenue"`
	RecentActivities    []any           `json:"recentActivities"`
}
