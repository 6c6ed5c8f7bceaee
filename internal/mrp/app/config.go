package app

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Every value comes from the
// environment with an MRP_ prefix (MRP_PORT, MRP_SECRET_KEY, ...), with a
// .env file loaded first when present.
type Config struct {
	// SecretKey is the server-side component of the credential digest. When
	// empty, a random secret is loaded from or created at SecretKeyFile.
	SecretKey     string
	SecretKeyFile string

	// DigestSalt is the fixed salt mixed into every credential digest.
	// Changing it invalidates all stored digests.
	DigestSalt string

	// AdminPassword is the initial password for the bootstrap admin account.
	AdminPassword string

	DatabaseFile string

	Env       string // dev, staging, prod
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
	Port      int

	ShutdownGracePeriod  time.Duration
	HousekeepingInterval time.Duration
	AuditRetention       time.Duration
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment. Missing values fall back to development defaults.
func LoadConfig() Config {
	// Best effort; the environment wins over the file.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MRP")
	v.AutomaticEnv()

	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("SECRET_KEY_FILE", "secret.key")
	v.SetDefault("DIGEST_SALT", "panaderia-salt-2024-")
	v.SetDefault("ADMIN_PASSWORD", "Admin2024!")
	v.SetDefault("DATABASE_FILE", "mrp.db")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)
	v.SetDefault("HOUSEKEEPING_INTERVAL", time.Hour)
	v.SetDefault("AUDIT_RETENTION", 90*24*time.Hour)

	return Config{
		SecretKey:            v.GetString("SECRET_KEY"),
		SecretKeyFile:        v.GetString("SECRET_KEY_FILE"),
		DigestSalt:           v.GetString("DIGEST_SALT"),
		AdminPassword:        v.GetString("ADMIN_PASSWORD"),
		DatabaseFile:         v.GetString("DATABASE_FILE"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		Port:                 v.GetInt("PORT"),
		ShutdownGracePeriod:  v.GetDuration("SHUTDOWN_GRACE_PERIOD"),
		HousekeepingInterval: v.GetDuration("HOUSEKEEPING_INTERVAL"),
		AuditRetention:       v.GetDuration("AUDIT_RETENTION"),
	}
}
