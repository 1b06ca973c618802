package models

import "strings"

// Listing statuses shared by properties, rooms and vehicles.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// CanTransitionListing reports whether a listing may move from one status to
// another. Pending listings can be approved or rejected; a rejected listing
// can still be approved later; an approved listing stays approved (a reject
// after approval is not available).
func CanTransitionListing(from, to string) bool {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusRejected:
		return to == StatusApproved
	default:
		return false
	}
}

// IsListingStatus reports whether s is one of the known listing statuses.
func IsListingStatus(s string) bool {
	switch strings.TrimSpace(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
