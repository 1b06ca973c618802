package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionListing(t *testing.T) {
	assert.True(t, CanTransitionListing(StatusPending, StatusApproved))
	assert.True(t, CanTransitionListing(StatusPending, StatusRejected))
	assert.True(t, CanTransitionListing(StatusRejected, StatusApproved))

	// approval is final
	assert.False(t, CanTransitionListing(StatusApproved, StatusRejected))
	assert.False(t, CanTransitionListing(StatusApproved, StatusPending))
	assert.False(t, CanTransitionListing(StatusRejected, StatusPending))
	assert.False(t, CanTransitionListing("", StatusApproved))
	assert.False(t, CanTransitionListing("Unknown", StatusApproved))
}

func TestIsListingStatus(t *testing.T) {
	assert.True(t, IsListingStatus("Pending"))
	assert.True(t, IsListingStatus(" Approved "))
	assert.False(t, IsListingStatus("approved"))
	assert.False(t, IsListingStatus(""))
}
