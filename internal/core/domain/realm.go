package domain

// Realm is the closed set of login variants. Each realm has its own
// credentials and session cookie so the validation desk and the finance
// upload desk stay independent.
type Realm string

const (
	RealmValidation Realm = "validasi"
	RealmUpload     Realm = "upload"
)

// ParseRealm maps the request "type" field to a Realm. The default mirrors
// the legacy app, which treated a missing type as the validation desk.
func ParseRealm(s string) (Realm, bool) {
	switch s {
	case "", string(RealmValidation):
		return RealmValidation, true
	case string(RealmUpload):
		return RealmUpload, true
	default:
		return "", false
	}
}
