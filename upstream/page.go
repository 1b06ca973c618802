package upstream

import (
	"context"
	"encoding/json"
	"net/http"
)

// Page is the canonical pagination envelope every list endpoint is normalized
// into. The counts are trusted verbatim from the backend.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

// HasNext reports whether a next page exists. The "Next" control must be
// disabled once the current page is the last one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages-1
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

func emptyPage[T any]() Page[T] {
	return Page[T]{Content: []T{}}
}

// rawEnvelope matches every payload shape the backend has been seen to
// produce for the same logical page.
type rawEnvelope[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        *int  `json:"number"`
	PageNumber    *int  `json:"pageNumber"`

	// The filtered room-booking endpoint wraps the envelope in "bookings";
	// the hotels endpoint wraps it in "data".
	Bookings *rawEnvelope[T] `json:"bookings"`
	Data     *rawEnvelope[T] `json:"data"`
}

func (e *rawEnvelope[T]) page() Page[T] {
	out := Page[T]{
		Content:       e.Content,
		TotalElements: e.TotalElements,
		TotalPages:    e.TotalPages,
	}
	if out.Content == nil {
		out.Content = []T{}
	}
	switch {
	case e.Number != nil:
		out.Number = *e.Number
	case e.PageNumber != nil:
		out.Number = *e.PageNumber
	}
	if out.TotalPages == 0 && len(out.Content) > 0 {
		out.TotalPages = 1
	}
	if out.TotalElements == 0 {
		out.TotalElements = int64(len(out.Content))
	}
	return out
}

// DecodePage normalizes whatever the backend returned into a Page. This is
// the single place that knows about the wrapper inconsistencies; nothing
// above this boundary branches on payload shape. Undecodable or unfamiliar
// payloads come back as an empty page rather than an error page.
func DecodePage[T any](raw []byte) (Page[T], error) {
	if len(raw) == 0 {
		return emptyPage[T](), nil
	}

	// A few endpoints return a bare array with no paging metadata.
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		p := Page[T]{Content: list, TotalElements: int64(len(list))}
		if p.Content == nil {
			p.Content = []T{}
		}
		if len(p.Content) > 0 {
			p.TotalPages = 1
		}
		return p, nil
	}

	var env rawEnvelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return emptyPage[T](), nil
	}
	if env.Bookings != nil && env.Bookings.Content != nil {
		return env.Bookings.page(), nil
	}
	if env.Data != nil && env.Data.Content != nil {
		return env.Data.page(), nil
	}
	if env.Content != nil {
		return env.page(), nil
	}
	return emptyPage[T](), nil
}

// GetPage fetches path and normalizes the response into a Page.
func GetPage[T any](ctx context.Context, c *Client, path string, params *Params) (Page[T], error) {
	raw, err := c.GetRaw(ctx, path, params)
	if err != nil {
		return emptyPage[T](), err
	}
	return DecodePage[T](raw)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Status == http.StatusNotFound
	}
	return false
}
