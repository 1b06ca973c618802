package models

import "github.com/shopspring/decimal"

// Payout statuses.
const (
	PayoutPending = "pending"
	PayoutPaid    = "paid"
)

// Payout is one vendor payout, displayed with a single mark-as-paid
// transition.
type Payout struct {
	ID         int64           `json:"id"`
	VendorName string          `json:"vendorName"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Status     string          `json:"status"` // paid | pending
	Type       string          `json:"type"`   // property | vehicle
}
