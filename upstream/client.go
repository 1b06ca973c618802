package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// Client talks to the platform backend. All the dashboard screens used to hit
// the backend directly with hard-coded hosts; here every call goes through one
// configured base URL with a real timeout.
type Client struct {
	BaseURL string
	// StatsURL overrides the host for the dashboard stats endpoint, which the
	// platform serves separately. Empty means BaseURL.
	StatsURL string

	HTTP *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Error is a non-2xx upstream response. The body is decoded best-effort: the
// backend sometimes returns {"message": ...}, sometimes {"error": ...},
// sometimes plain text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream responded %d", e.Status)
	}
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

func errorFromBody(status int, body []byte) *Error {
	var probe struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &probe); err == nil {
		if probe.Message != "" {
			msg = probe.Message
		} else if probe.Error != "" {
			msg = probe.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
	}
	return &Error{Status: status, Message: msg}
}

func (c *Client) url(path string, params *Params) string {
	u := c.BaseURL + path
	if q := params.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromBody(resp.StatusCode, data)
	}
	return data, nil
}

// GetRaw fetches path and returns the raw body. List screens decode it through
// DecodePage so shape quirks stay out of handler code.
func (c *Client) GetRaw(ctx context.Context, path string, params *Params) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.url(path, params), "", nil)
}

// GetJSON fetches path and decodes the body into out. A nil out discards it.
func (c *Client) GetJSON(ctx context.Context, path string, params *Params, out any) error {
	data, err := c.GetRaw(ctx, path, params)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// PostJSON sends body as JSON. A nil body sends an empty POST, which is what
// the cancel/mark-paid style actions expect.
func (c *Client) PostJSON(ctx context.Context, path string, params *Params, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, params, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, params *Params, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, params, body, out)
}

func (c *Client) PatchJSON(ctx context.Context, path string, params *Params, body, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, params, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, c.BaseURL+path, "", nil)
	return err
}

func (c *Client) sendJSON(ctx context.Context, method, path string, params *Params, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}
	data, err := c.do(ctx, method, c.url(path, params), contentType, reader)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// FilePart is one uploaded file forwarded to the backend unchanged.
type FilePart struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// SubmitMultipart packages payload as a JSON part under jsonField plus the
// given file parts, matching the create/edit contract shared by hotels,
// rooms, vehicles and farms.
func (c *Client) SubmitMultipart(ctx context.Context, method, path, jsonField string, payload any, files []FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s part: %w", jsonField, err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, jsonField))
	header.Set("Content-Type", "application/json")
	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := part.Write(encoded); err != nil {
		return err
	}

	for _, f := range files {
		fw, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(fw, f.Reader); err != nil {
			return fmt.Errorf("copy file part %s: %w", f.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	data, err := c.do(ctx, method, c.BaseURL+path, w.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// GetStats hits the dashboard stats endpoint, honoring the StatsURL override.
func (c *Client) GetStats(ctx context.Context, path string, out any) error {
	base := c.StatsURL
	if base == "" {
		base = c.BaseURL
	}
	data, err := c.do(ctx, http.MethodGet, strings.TrimRight(base, "/")+path, "", nil)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

func decodeInto(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}
