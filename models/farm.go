package models

import "github.com/shopspring/decimal"

// Farm is a farm-stay listing.
type Farm struct {
	ID            int64           `json:"id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	ContactNumber string          `json:"contactNumber"`
	Email         string          `json:"email"`
	PricePerDay   decimal.Decimal `json:"pricePerDay"`
	MaxCapacity   int             `json:"maxCapacity"`
	Amenities     []string        `json:"amenities"`
	Activities    []string        `json:"activities"`
	ImageURLs     []string        `json:"imageUrls,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

// FarmBooking mirrors the backend's farm booking record.
type FarmBooking struct {
	ID               int64           `json:"id"`
	BookingReference string          `json:"bookingReference"`
	FarmID           int64           `json:"farmId"`
	FarmName         string          `json:"farmName"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerPhone    string          `json:"customerPhone"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	NumberOfGuests   int             `json:"numberOfGuests"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	PaymentStatus    string          `json:"paymentStatus"`
	Status           string          `json:"status"` // CONFIRMED | PENDING | CANCELLED | COMPLETED
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// FarmStatistics is the aggregate block the farm commissions screen shows for
// a date range.
type FarmStatistics struct {
	TotalBookings   int             `json:"totalBookings"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	StatusBreakdown map[string]int  `json:"statusBreakdown"`
}

// FarmCommissionTotal is the commission sum for a date range.
type FarmCommissionTotal struct {
	TotalCommission decimal.Decimal `json:"totalCommission"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
}
