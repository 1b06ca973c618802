package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"travel-admin/models"
	"travel-admin/upstream"
	"travel-admin/utils"

	"github.com/google/uuid"
)

// The backend's literal success response for the verify step. Anything else
// means the code was not accepted.
const otpVerifiedMessage = "OTP verified successfully"

var ErrOTPRejected = errors.New("otp_rejected")

type otpResponse struct {
	Message string `json:"message"`
}

// AuthService drives the two-step OTP login against the platform backend and
// mints the session on success. The backend never issues a token of its own;
// the gateway mints a random one and the session store is what makes it mean
// anything.
type AuthService struct {
	Up       *upstream.Client
	Sessions *SessionService
}

func NewAuthService(up *upstream.Client, sessions *SessionService) *AuthService {
	return &AuthService{Up: up, Sessions: sessions}
}

// RequestCode asks the backend to send a one-time code to the fixed admin
// address. Whatever status message a 2xx response carries is relayed
// verbatim; only transport failures and non-2xx responses are errors.
func (s *AuthService) RequestCode(ctx context.Context) (string, error) {
	var resp otpResponse
	if err := s.Up.PostJSON(ctx, "/api/property-login/otp_send", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyCode exchanges email+code. On the backend's success message it mints
// a session token and logs the session in; on any other message no session is
// created and the backend's message comes back with ErrOTPRejected.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) (string, error) {
	params := upstream.NewParams().
		Add("email", email).
		Add("otp", code)

	var resp otpResponse
	if err := s.Up.PostJSON(ctx, "/api/property-login/otp_verify", params, nil, &resp); err != nil {
		return "", err
	}
	if resp.Message != otpVerifiedMessage {
		log.Printf("⚠️  OTP verification rejected for %s: %s", utils.MaskEmail(email), resp.Message)
		return "", fmt.Errorf("%w: %s", ErrOTPRejected, resp.Message)
	}

	token := mintToken()
	if _, err := s.Sessions.Login(token, email); err != nil {
		return "", err
	}
	log.Printf("✅ Session opened for %s", utils.MaskEmail(email))
	return token, nil
}

// Logout revokes the session for token.
func (s *AuthService) Logout(token string) error {
	return s.Sessions.Logout(token)
}

// Session returns the active session for token.
func (s *AuthService) Session(token string) (models.Session, error) {
	return s.Sessions.Current(token)
}

func mintToken() string {
	return fmt.Sprintf("auth_%d_%s", time.Now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", ""))
}
