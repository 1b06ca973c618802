package models

import "github.com/shopspring/decimal"

// VehiclePricing is the per-hour/day/week rate block.
type VehiclePricing struct {
	Hourly decimal.Decimal `json:"hourly"`
	Daily  decimal.Decimal `json:"daily"`
	Weekly decimal.Decimal `json:"weekly"`
}

// Vehicle is a rentable vehicle listing.
type Vehicle struct {
	ID              int64           `json:"id,omitempty"`
	Name            string          `json:"name"`
	VehicleNumber   string          `json:"vehicleNumber"`
	Type            string          `json:"type"`     // Bike | Scooter | Car | SUV | Other
	Category        string          `json:"category"` // 2W | 4W
	Description     string          `json:"description"`
	Mileage         string          `json:"mileage"`
	Images          []string        `json:"images,omitempty"`
	Thumbnail       string          `json:"thumbnail,omitempty"`
	Pricing         VehiclePricing  `json:"pricing"`
	Fuel            string          `json:"fuel"`
	AirConditioning string          `json:"airConditioning"`
	Transmission    string          `json:"transmission"`
	City            string          `json:"city"`
	Availability    string          `json:"availability"`
	Vendor          string          `json:"vendor"`
	Status          string          `json:"status"`
	DateOfListing   string          `json:"dateOfListing,omitempty"`
	Revenue         decimal.Decimal `json:"revenue"`
}
