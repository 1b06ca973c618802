package models

import "github.com/shopspring/decimal"

// Property is a hotel / guest house listing.
type Property struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Country     string          `json:"country"`
	ZipCode     string          `json:"zipCode"`
	Location    string          `json:"location,omitempty"`
	Type        string          `json:"type"` // Hotel | Guest House | Resort | Other
	Status      string          `json:"status"`
	Rating      float64         `json:"rating"`
	Description string          `json:"description"`
	Amenities   string          `json:"amenities"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Admin       string          `json:"admin"`
	Bookings    int             `json:"bookings"`
	Revenue     decimal.Decimal `json:"revenue"`
	MinPrice    decimal.Decimal `json:"minPrice"`
	MaxPrice    decimal.Decimal `json:"maxPrice"`
	IsApproved  bool            `json:"isApproved,omitempty"`
}

// Room is one room type listing under a hotel.
type Room struct {
	ID             int64           `json:"id,omitempty"`
	HotelID        int64           `json:"hotelId"`
	RoomType       string          `json:"roomType"`
	PricePerNight  decimal.Decimal `json:"pricePerNight"`
	MaxOccupancy   int             `json:"maxOccupancy"`
	AvailableRooms int             `json:"availableRooms"`
	RoomSize       string          `json:"roomSize"`
	BedType        string          `json:"bedType"`
	RoomAmenities  string          `json:"roomAmenities"`
	RoomImages     []string        `json:"roomImages,omitempty"`
	RoomNumber     string          `json:"roomNumber"`
	FloorNumber    int             `json:"floorNumber"`
	Active         bool            `json:"active"`
	IsAvailable    bool            `json:"isAvailable"`
}
