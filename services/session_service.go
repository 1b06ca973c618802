package services

import (
	"errors"
	"strings"
	"time"

	"travel-admin/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session_not_found")

// SessionService wraps the local store for the session lifecycle. A token's
// presence is the whole check: no expiry, no refresh, revoked only by logout.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

func isDuplicateErr(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// Login persists token as an active session for email.
func (s *SessionService) Login(token, email string) (models.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Session{}, errors.New("empty token")
	}

	session := models.Session{
		Token: token,
		Email: strings.TrimSpace(email),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		if isDuplicateErr(err) {
			// Same token logged in again: reactivate the existing row.
			var existing models.Session
			if fErr := s.DB.Where("token = ?", token).First(&existing).Error; fErr != nil {
				return models.Session{}, fErr
			}
			if uErr := s.DB.Model(&existing).Update("revoked_at", nil).Error; uErr != nil {
				return models.Session{}, uErr
			}
			existing.RevokedAt = nil
			return existing, nil
		}
		return models.Session{}, err
	}
	return session, nil
}

// Logout revokes the session for token. Revoking an unknown token is not an
// error; the end state is the same.
func (s *SessionService) Logout(token string) error {
	now := time.Now().UTC()
	return s.DB.Model(&models.Session{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", &now).Error
}

// Current returns the active session for token.
func (s *SessionService) Current(token string) (models.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Session{}, ErrSessionNotFound
	}

	var session models.Session
	err := s.DB.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}
	if !session.Active() {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// IsAuthenticated reports whether token belongs to an active session.
func (s *SessionService) IsAuthenticated(token string) bool {
	_, err := s.Current(token)
	return err == nil
}

// Touch updates the session's last-seen timestamp, best-effort.
func (s *SessionService) Touch(token string) {
	now := time.Now().UTC()
	s.DB.Model(&models.Session{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("last_seen_at", &now)
}
