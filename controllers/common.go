package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"travel-admin/models"
	"travel-admin/upstream"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

// respondUpstreamError maps an upstream failure onto the response: backend
// rejections keep their status and message, transport failures become a 502
// with a generic message.
func respondUpstreamError(c *gin.Context, err error) {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		utils.JSONError(c, ue.Status, ue.Message)
		return
	}
	utils.JSONError(c, http.StatusBadGateway, "upstream request failed")
}

// parsePaging reads page/size query params with the dashboard defaults.
func parsePaging(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// actorEmail returns the signed-in admin's email, set by the session
// middleware.
func actorEmail(c *gin.Context) string {
	if v, ok := c.Get("session"); ok {
		if sess, ok2 := v.(models.Session); ok2 {
			return sess.Email
		}
	}
	return ""
}

// bindJSONPart decodes the JSON blob part of a multipart submission (the
// "hotel" / "vehicle" / "farm" field) into out.
func bindJSONPart(c *gin.Context, field string, out any) error {
	raw := c.Request.FormValue(field)
	if raw == "" {
		return fmt.Errorf("missing %q part", field)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("invalid %q part: %w", field, err)
	}
	return nil
}

// filePart reads the first uploaded file under field, nil when absent.
func filePart(c *gin.Context, field string) (*upstream.FilePart, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &upstream.FilePart{
		Field:    field,
		Filename: header.Filename,
		Reader:   bytes.NewReader(data),
	}, nil
}

// fileParts reads every uploaded file under field.
func fileParts(c *gin.Context, field string) ([]upstream.FilePart, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var parts []upstream.FilePart
	for _, header := range form.File[field] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, readErr := io.ReadAll(f)
		f.Close()
		if readErr != nil {
			return nil, readErr
		}
		parts = append(parts, upstream.FilePart{
			Field:    field,
			Filename: header.Filename,
			Reader:   bytes.NewReader(data),
		})
	}
	return parts, nil
}
