package models

import "github.com/shopspring/decimal"

// Commission is one derived commission record, purely displayed.
type Commission struct {
	ID               int64           `json:"id"`
	BookingReference string          `json:"bookingReference"`
	BookingType      string          `json:"bookingType"` // HOTEL | VEHICLE
	BookingID        int64           `json:"bookingId"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	HotelEarnings    decimal.Decimal `json:"hotelEarnings,omitempty"`
	AdminEarnings    decimal.Decimal `json:"adminEarnings"`
	HotelID          *int64          `json:"hotelId,omitempty"`
	HotelName        string          `json:"hotelName,omitempty"`
	VehicleID        *int64          `json:"vehicleId,omitempty"`
	VehicleName      string          `json:"vehicleName,omitempty"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	PaymentStatus    string          `json:"paymentStatus"`
	CommissionStatus string          `json:"commissionStatus"`
	SettlementDate   *string         `json:"settlementDate,omitempty"`
	Remarks          string          `json:"remarks,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// CommissionStatistics is the overall earnings block.
type CommissionStatistics struct {
	TotalAdminEarnings               decimal.Decimal `json:"totalAdminEarnings"`
	TotalHotelBookings               int             `json:"totalHotelBookings"`
	TotalVehicleBookings             int             `json:"totalVehicleBookings"`
	TotalHotelCommissions            decimal.Decimal `json:"totalHotelCommissions"`
	TotalVehicleCommissions          decimal.Decimal `json:"totalVehicleCommissions"`
	AverageCommissionPerHotelBooking decimal.Decimal `json:"averageCommissionPerHotelBooking"`
}

// EarningsRow is one row of the per-period earnings overview.
type EarningsRow struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	HotelID         *int64          `json:"hotelId,omitempty"`
	HotelName       string          `json:"hotelName,omitempty"`
	VehicleID       *int64          `json:"vehicleId,omitempty"`
	VehicleName     string          `json:"vehicleName,omitempty"`
	BookingType     string          `json:"bookingType"`
	TotalBookings   int             `json:"totalBookings"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	HotelEarnings   decimal.Decimal `json:"hotelEarnings,omitempty"`
	AdminEarnings   decimal.Decimal `json:"adminEarnings"`
}

// CommissionSetting is one configurable commission rate.
type CommissionSetting struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	BookingType    string          `json:"bookingType"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	UpdatedAt      string          `json:"updatedAt,omitempty"`
}
