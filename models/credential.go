package models

// LoginCredential is one property-login record managed from the settings
// screen, stored by the backend.
type LoginCredential struct {
	ID           int64  `json:"id,omitempty"`
	HotelIDValue string `json:"hotelIDValue"`
	HotelName    string `json:"hotelName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}
