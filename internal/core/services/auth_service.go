package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/pkg/config"
)

const tokenIssuer = "ref26-backend"

// AuthService issues and verifies realm session tokens. Each realm (the
// validation desk and the finance upload desk) has one shared credential pair
// and its own cookie.
type AuthService struct {
	secret   []byte
	duration time.Duration
	realms   map[domain.Realm]config.RealmConfig
}

// NewAuthService creates an AuthService from the configured realms.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret:   []byte(cfg.SessionSecret),
		duration: cfg.SessionDuration,
		realms: map[domain.Realm]config.RealmConfig{
			domain.RealmValidation: cfg.ValidationRealm,
			domain.RealmUpload:     cfg.UploadRealm,
		},
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login verifies the realm credentials and returns a signed session token.
func (s *AuthService) Login(realm domain.Realm, username, password string) (string, error) {
	rc, ok := s.realms[realm]
	if !ok {
		return "", fmt.Errorf("%w: unknown auth type %q", apperrors.ErrValidation, realm)
	}
	// A realm without a configured password never accepts logins.
	if rc.PasswordHash == "" {
		return "", apperrors.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(rc.Username)) != 1 {
		return "", apperrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rc.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   string(realm),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifySession reports whether token is a live session for the realm.
func (s *AuthService) VerifySession(realm domain.Realm, token string) bool {
	if token == "" {
		return false
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !parsed.Valid {
		return false
	}
	return claims.Subject == string(realm)
}

// CookieName returns the session cookie name for the realm, empty for an
// unknown realm.
func (s *AuthService) CookieName(realm domain.Realm) string {
	return s.realms[realm].CookieName
}
