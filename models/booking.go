package models

import "github.com/shopspring/decimal"

// RoomBooking mirrors the backend's room booking record. Dates stay as the
// backend's strings; the dashboard relays them, it does not interpret them.
type RoomBooking struct {
	ID                 int64           `json:"id"`
	BookingReference   string          `json:"bookingReference"`
	UserName           string          `json:"userName"`
	UserEmail          string          `json:"userEmail"`
	UserPhone          string          `json:"userPhone"`
	CheckInDate        string          `json:"checkInDate"`
	CheckOutDate       string          `json:"checkOutDate"`
	NumberOfRooms      int             `json:"numberOfRooms"`
	NumberOfGuests     int             `json:"numberOfGuests"`
	NumberOfNights     int             `json:"numberOfNights"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	BookingStatus      string          `json:"bookingStatus"`
	PaymentStatus      string          `json:"paymentStatus"`
	PaymentMethod      string          `json:"paymentMethod"`
	SpecialRequests    string          `json:"specialRequests"`
	RoomID             int64           `json:"roomId"`
	RoomType           string          `json:"roomType"`
	PricePerNight      decimal.Decimal `json:"pricePerNight"`
	BedType            string          `json:"bedType"`
	RoomSize           string          `json:"roomSize"`
	HotelID            int64           `json:"hotelId"`
	HotelName          string          `json:"hotelName"`
	HotelAddress       string          `json:"hotelAddress"`
	HotelCity          string          `json:"hotelCity"`
	HotelCountry       string          `json:"hotelCountry"`
	HotelRating        float64         `json:"hotelRating"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
	CancelledAt        *string         `json:"cancelledAt"`
	CancellationReason *string         `json:"cancellationReason"`
	UID                string          `json:"uid"`
}

// VehicleBooking mirrors the backend's vehicle booking record.
type VehicleBooking struct {
	ID               int64           `json:"id"`
	VehicleID        int64           `json:"vehicleId"`
	BookingReference string          `json:"bookingReference"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerPhone    string          `json:"customerPhone"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	PickupLocation   string          `json:"pickupLocation"`
	DropLocation     string          `json:"dropLocation"`
	BookingType      string          `json:"bookingType"`
	SpecialRequests  string          `json:"specialRequests"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	PaymentStatus    string          `json:"paymentStatus"`
	BookingStatus    string          `json:"bookingStatus"`
	AadharCardURL    string          `json:"aadharCardUrl"`
	PanCardURL       string          `json:"panCardUrl"`
	VehicleName      string          `json:"vehicleName"`
	VehicleType      string          `json:"vehicleType"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
	UID              string          `json:"uid"`
}

// BookingFilter is the filter set of the booking list screen.
type BookingFilter struct {
	Reference     string
	PaymentStatus string
	DateFrom      string
	DateTo        string
	SortBy        string
	SortDir       string
}
