package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-admin/models"
	"travel-admin/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyUpdateStatusRoute(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			io.WriteString(w, fmt.Sprintf(`{"id":4,"status":%q}`, models.StatusPending))
			return
		}
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
	}))
	defer srv.Close()

	svc := NewPropertyService(upstream.NewClient(srv.URL))

	updated, err := svc.UpdateStatus(context.Background(), 4, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/v1/hotels/update-status/4", gotPath)
	assert.JSONEq(t, `{"status":"Approved"}`, gotBody)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestPropertySavePicksRouteByID(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, `{"id":3,"name":"Sunrise Villa"}`)
	}))
	defer srv.Close()

	svc := NewPropertyService(upstream.NewClient(srv.URL))

	_, err := svc.Save(context.Background(), models.Property{Name: "Sunrise Villa"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/hotels", gotPath)

	_, err = svc.Save(context.Background(), models.Property{ID: 3, Name: "Sunrise Villa"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/hotels/update/3", gotPath)
}

func TestPropertyToggleApprovalRoute(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
	}))
	defer srv.Close()

	svc := NewPropertyService(upstream.NewClient(srv.URL))

	require.NoError(t, svc.ToggleApproval(context.Background(), 7, true))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/hotels/7/approval-toggle", gotPath)
	assert.JSONEq(t, `{"approved":true}`, gotBody)

	require.NoError(t, svc.ToggleApproval(context.Background(), 7, false))
	assert.JSONEq(t, `{"approved":false}`, gotBody)
}

func TestPropertyDeleteRoute(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	svc := NewPropertyService(upstream.NewClient(srv.URL))

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/hotels/9", gotPath)
}
