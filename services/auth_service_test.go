package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-admin/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCodeRelaysBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/property-login/otp_send", r.URL.Path)
		io.WriteString(w, `{"message":"otp sent"}`)
	}))
	defer srv.Close()

	svc := NewAuthService(upstream.NewClient(srv.URL), NewSessionService(newTestDB(t)))

	msg, err := svc.RequestCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "otp sent", msg)
}

func TestRequestCodeRelaysAnySuccessMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"OTP resent to admin"}`)
	}))
	defer srv.Close()

	svc := NewAuthService(upstream.NewClient(srv.URL), NewSessionService(newTestDB(t)))

	msg, err := svc.RequestCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OTP resent to admin", msg)
}

func TestRequestCodeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"message":"mail quota exceeded"}`)
	}))
	defer srv.Close()

	svc := NewAuthService(upstream.NewClient(srv.URL), NewSessionService(newTestDB(t)))

	_, err := svc.RequestCode(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOTPRejected)
}

func TestVerifyCodeSuccessOpensSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/property-login/otp_verify", r.URL.Path)
		assert.Equal(t, "admin@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "123456", r.URL.Query().Get("otp"))
		io.WriteString(w, `{"message":"OTP verified successfully"}`)
	}))
	defer srv.Close()

	sessions := NewSessionService(newTestDB(t))
	svc := NewAuthService(upstream.NewClient(srv.URL), sessions)

	token, err := svc.VerifyCode(context.Background(), "admin@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "auth_"))
	assert.True(t, sessions.IsAuthenticated(token))

	session, err := sessions.Current(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", session.Email)
}

func TestVerifyCodeRejectionOpensNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"Invalid OTP"}`)
	}))
	defer srv.Close()

	db := newTestDB(t)
	sessions := NewSessionService(db)
	svc := NewAuthService(upstream.NewClient(srv.URL), sessions)

	token, err := svc.VerifyCode(context.Background(), "admin@example.com", "000000")
	assert.ErrorIs(t, err, ErrOTPRejected)
	assert.Empty(t, token)

	var count int64
	db.Table("sessions").Count(&count)
	assert.Zero(t, count)
}

func TestVerifyCodeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"error":"backend down"}`)
	}))
	defer srv.Close()

	svc := NewAuthService(upstream.NewClient(srv.URL), NewSessionService(newTestDB(t)))

	_, err := svc.VerifyCode(context.Background(), "admin@example.com", "123456")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOTPRejected)
}
