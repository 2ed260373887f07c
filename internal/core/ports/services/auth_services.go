package services

import "github.com/rumahamal/ref26-backend/internal/core/domain"

// AuthSvcFacade implements the two-realm session scheme. Each realm owns a
// cookie whose value is a signed session token.
type AuthSvcFacade interface {
	// Login verifies the realm credentials and returns a session token.
	// Returns apperrors.ErrUnauthorized for a bad username/password.
	Login(realm domain.Realm, username, password string) (token string, err error)
	// VerifySession reports whether token is a live session for the realm.
	VerifySession(realm domain.Realm, token string) bool
	// CookieName returns the session cookie name for the realm.
	CookieName(realm domain.Realm) string
}
