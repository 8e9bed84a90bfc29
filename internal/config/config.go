package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Session  SessionConfig
	Parties  PartiesConfig
	Geo      GeoConfig
	Backup   BackupConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig holds the access-gate cookie settings. Key is a base64
// fernet key used to seal session tokens.
type SessionConfig struct {
	CookieName string
	Key        string
	TTL        time.Duration
}

// PartyConfig describes one of the two fixed participants: the login
// username, the name shown in the UI, and the password credential. The
// credential may be a bcrypt hash or a plain value; plain values are
// hashed at startup.
type PartyConfig struct {
	Username    string
	DisplayName string
	Password    string
}

// PartiesConfig holds both participants.
type PartiesConfig struct {
	One PartyConfig
	Two PartyConfig
}

// GeoConfig holds the best-effort geolocation side-channel settings.
type GeoConfig struct {
	Enabled  bool
	Endpoint string
}

// BackupConfig holds the scheduled CSV export settings. Schedule uses
// standard cron syntax.
type BackupConfig struct {
	Enabled  bool
	Dir      string
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/shared_ledger.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "ledger_session"),
			Key:        os.Getenv("SESSION_KEY"),
			TTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		},
		Parties: PartiesConfig{
			One: PartyConfig{
				Username:    getEnv("PARTY_ONE_USERNAME", "AK"),
				DisplayName: getEnv("PARTY_ONE_NAME", getEnv("PARTY_ONE_USERNAME", "AK")),
				Password:    os.Getenv("PARTY_ONE_PASSWORD"),
			},
			Two: PartyConfig{
				Username:    getEnv("PARTY_TWO_USERNAME", "AA"),
				DisplayName: getEnv("PARTY_TWO_NAME", getEnv("PARTY_TWO_USERNAME", "AA")),
				Password:    os.Getenv("PARTY_TWO_PASSWORD"),
			},
		},
		Geo: GeoConfig{
			Enabled:  getEnvBool("GEOLOCATION_ENABLED", true),
			Endpoint: getEnv("GEOLOCATION_URL", "https://ipinfo.io/json"),
		},
		Backup: BackupConfig{
			Enabled:  getEnvBool("BACKUP_ENABLED", true),
			Dir:      getEnv("BACKUP_DIR", "./data/backups"),
			Schedule: getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks the settings the server cannot run without. The access
// gate needs both party credentials and a session key; everything else
// has a workable default.
func (c *Config) validate() error {
	if c.Parties.One.Password == "" || c.Parties.Two.Password == "" {
		return fmt.Errorf("missing credentials: set PARTY_ONE_PASSWORD and PARTY_TWO_PASSWORD")
	}
	if c.Parties.One.Username == c.Parties.Two.Username {
		return fmt.Errorf("party usernames must differ")
	}
	if c.Session.Key == "" {
		return fmt.Errorf("missing session key: set SESSION_KEY to a base64 fernet key")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
