package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// RealmConfig holds the credentials and cookie settings of one login realm.
type RealmConfig struct {
	Username     string
	PasswordHash string // bcrypt
	CookieName   string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	SessionSecret   string
	SessionDuration time.Duration

	// Object storage (Supabase storage REST endpoint).
	SupabaseURL        string
	SupabaseServiceKey string
	EventsBucket       string
	KemitraanPKSBucket string
	KemitraanDokBucket string

	// Login realms: the validation desk and the finance upload desk.
	ValidationRealm RealmConfig
	UploadRealm     RealmConfig

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SESSION_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SESSION_DURATION", "24h")
	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_SERVICE_KEY", "")
	viper.SetDefault("EVENTS_BUCKET", "events")
	viper.SetDefault("KEMITRAAN_PKS_BUCKET", "kemitraan_pks")
	viper.SetDefault("KEMITRAAN_DOK_BUCKET", "kemitraan_dokumentasi")
	viper.SetDefault("VALIDATION_USERNAME", "validator")
	viper.SetDefault("VALIDATION_PASSWORD", "")
	viper.SetDefault("UPLOAD_USERNAME", "finance")
	viper.SetDefault("UPLOAD_PASSWORD", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: SESSION_SECRET environment variable not set. Using default insecure key.")
	}

	sessionDurationStr := viper.GetString("SESSION_DURATION")
	sessionDuration, err := time.ParseDuration(sessionDurationStr)
	if err != nil {
		sessionDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_DURATION ('%s'). Defaulting to %s.\n", sessionDurationStr, sessionDuration)
	}
	cfg.SessionDuration = sessionDuration

	cfg.SupabaseURL = viper.GetString("SUPABASE_URL")
	cfg.SupabaseServiceKey = viper.GetString("SUPABASE_SERVICE_KEY")
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		log.Println("Warning: SUPABASE_URL / SUPABASE_SERVICE_KEY not set. Attachment uploads will fail.")
	}
	cfg.EventsBucket = viper.GetString("EVENTS_BUCKET")
	cfg.KemitraanPKSBucket = viper.GetString("KEMITRAAN_PKS_BUCKET")
	cfg.KemitraanDokBucket = viper.GetString("KEMITRAAN_DOK_BUCKET")

	cfg.ValidationRealm = RealmConfig{
		Username:     viper.GetString("VALIDATION_USERNAME"),
		PasswordHash: hashPassword("VALIDATION_PASSWORD"),
		CookieName:   "validasi_token",
	}
	cfg.UploadRealm = RealmConfig{
		Username:     viper.GetString("UPLOAD_USERNAME"),
		PasswordHash: hashPassword("UPLOAD_PASSWORD"),
		CookieName:   "upload_token",
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// hashPassword bcrypt-hashes the plaintext password from the named env var so
// only the hash stays resident. An unset password disables the realm's login.
func hashPassword(key string) string {
	password := viper.GetString(key)
	if password == "" {
		log.Printf("Warning: %s not set. Logins for this realm will be rejected.\n", key)
		return ""
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash %s: %v\n", key, err)
		return ""
	}
	return string(hash)
}
