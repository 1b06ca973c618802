package upstream

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsOmitsEmptyAndAllSentinel(t *testing.T) {
	params := NewParams().
		Add("search", "").
		Add("status", "All").
		Add("paymentStatus", "all").
		Add("sortBy", "revenue")

	values, err := url.ParseQuery(params.Encode())
	require.NoError(t, err)

	assert.Equal(t, "revenue", values.Get("sortBy"))
	assert.NotContains(t, values, "search")
	assert.NotContains(t, values, "status")
	assert.NotContains(t, values, "paymentStatus")
}

func TestParamsAddTrimsWhitespace(t *testing.T) {
	params := NewParams().Add("city", "  Pune  ").Add("blank", "   ")

	values, err := url.ParseQuery(params.Encode())
	require.NoError(t, err)
	assert.Equal(t, "Pune", values.Get("city"))
	assert.NotContains(t, values, "blank")
}

func TestParamsPageClampsNegatives(t *testing.T) {
	values, err := url.ParseQuery(NewParams().Page(-3, 0).Encode())
	require.NoError(t, err)
	assert.Equal(t, "0", values.Get("page"))
	assert.Equal(t, "10", values.Get("size"))
}

func TestParamsHasFilters(t *testing.T) {
	paging := NewParams().Page(2, 10).Add("sortBy", "createdAt").Add("sortDirection", "desc")
	assert.False(t, paging.HasFilters())

	filtered := NewParams().Page(0, 10).Add("paymentStatus", "PAID")
	assert.True(t, filtered.HasFilters())

	var nilParams *Params
	assert.False(t, nilParams.HasFilters())
}
