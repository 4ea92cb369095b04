package config

import (
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Config carries everything the service reads from the environment.
// Values come from FANMEET_* variables, with dev-friendly defaults so the
// server boots on a clean checkout.
type Config struct {
	Port          string
	PublicBaseURL string

	// Storage
	RecordsFile string
	UploadsDir  string

	// Session + admin auth
	SessionKey        string
	JWTSecret         string
	AdminPasswordHash string
	AdminEmail        string

	// Payment gateway
	GatewayURL string
	GatewayKey string
}

// Load builds the Config from the process environment. Call godotenv.Load
// before this if you want .env support.
func Load() Config {
	return Config{
		Port:          getenv("FANMEET_PORT", "8080"),
		PublicBaseURL: getenv("FANMEET_PUBLIC_BASE_URL", "http://localhost:8080"),

		RecordsFile: getenv("FANMEET_RECORDS_FILE", "data/records.json"),
		UploadsDir:  getenv("FANMEET_UPLOADS_DIR", "uploads"),

		SessionKey: getenv("FANMEET_SESSION_KEY", "dev-session-key-change-me"),
		JWTSecret:  getenv("FANMEET_JWT_SECRET", "dev-jwt-secret-change-me"),

		AdminPasswordHash: getenv("FANMEET_ADMIN_PASSWORD_HASH", defaultAdminHash()),
		AdminEmail:        getenv("FANMEET_ADMIN_EMAIL", ""),

		GatewayURL: getenv("FANMEET_GATEWAY_URL", ""),
		GatewayKey: getenv("FANMEET_GATEWAY_KEY", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultAdminHash hashes the dev-only admin password "admin" so the server
// boots with a working admin login on a clean checkout. Production deploys
// must set FANMEET_ADMIN_PASSWORD_HASH.
func defaultAdminHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		panic("failed to hash default admin password: " + err.Error())
	}
	return string(hash)
}
