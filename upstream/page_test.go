package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestDecodePagePlainEnvelope(t *testing.T) {
	raw := []byte(`{"content":[{"id":1,"name":"a"},{"id":2,"name":"b"}],"totalElements":12,"totalPages":6,"number":1}`)

	page, err := DecodePage[testRow](raw)
	require.NoError(t, err)

	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(12), page.TotalElements)
	assert.Equal(t, 6, page.TotalPages)
	assert.Equal(t, 1, page.Number)
}

func TestDecodePagePageNumberAlias(t *testing.T) {
	raw := []byte(`{"content":[{"id":1}],"totalElements":1,"totalPages":1,"pageNumber":0}`)

	page, err := DecodePage[testRow](raw)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
}

func TestDecodePageBookingsWrapper(t *testing.T) {
	raw := []byte(`{"bookings":{"content":[{"id":7,"name":"x"}],"totalElements":1,"totalPages":1,"number":0}}`)

	page, err := DecodePage[testRow](raw)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(7), page.Content[0].ID)
}

func TestDecodePageDataWrapper(t *testing.T) {
	raw := []byte(`{"data":{"content":[{"id":3}],"totalElements":25,"totalPages":3,"number":2}}`)

	page, err := DecodePage[testRow](raw)
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 2, page.Number)
}

func TestDecodePageBareArray(t *testing.T) {
	raw := []byte(`[{"id":1},{"id":2},{"id":3}]`)

	page, err := DecodePage[testRow](raw)
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Number)
}

func TestDecodePageUnfamiliarShape(t *testing.T) {
	page, err := DecodePage[testRow]([]byte(`{"whatever":true}`))
	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)

	page, err = DecodePage[testRow](nil)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{Status: 404, Message: "no such booking"}))
	assert.False(t, IsNotFound(&Error{Status: 500}))
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsNotFound(nil))
}

func TestPageHasNextBounds(t *testing.T) {
	last := Page[testRow]{TotalPages: 5, Number: 4}
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	middle := Page[testRow]{TotalPages: 5, Number: 3}
	assert.True(t, middle.HasNext())

	first := Page[testRow]{TotalPages: 5, Number: 0}
	assert.False(t, first.HasPrevious())

	empty := Page[testRow]{}
	assert.False(t, empty.HasNext())
	assert.False(t, empty.HasPrevious())
}
