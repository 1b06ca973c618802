package upstream

import (
	"net/url"
	"strconv"
	"strings"
)

// Params builds a query string from filter values. Empty values and the "All"
// sentinel the filter dropdowns use are omitted, so the backend only ever sees
// filters that are actually active.
type Params struct {
	values url.Values
}

func NewParams() *Params {
	return &Params{values: url.Values{}}
}

func isSentinel(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "All")
}

// Add sets key=value unless the value is empty or the "All" sentinel.
func (p *Params) Add(key, value string) *Params {
	value = strings.TrimSpace(value)
	if value == "" || isSentinel(value) {
		return p
	}
	p.values.Set(key, value)
	return p
}

func (p *Params) AddInt(key string, value int) *Params {
	p.values.Set(key, strconv.Itoa(value))
	return p
}

// Page sets page/size. Negative pages are clamped to the first page.
func (p *Params) Page(page, size int) *Params {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return p.AddInt("page", page).AddInt("size", size)
}

func (p *Params) Encode() string {
	if p == nil || len(p.values) == 0 {
		return ""
	}
	return p.values.Encode()
}

// HasFilters reports whether any key besides paging/sorting is set. Room and
// vehicle booking lists route to the /filter/advanced endpoint only when a
// real filter is active.
func (p *Params) HasFilters() bool {
	if p == nil {
		return false
	}
	for key := range p.values {
		switch key {
		case "page", "size", "sortBy", "sortDir", "sortDirection", "sort":
		default:
			return true
		}
	}
	return false
}
