package config

import (
	"fmt"
	"os"
	"time"

	"github.com/picshelf/picshelf/internal/auth"
	"github.com/picshelf/picshelf/internal/models"
	"gopkg.in/yaml.v3"
)

// Config holds all server settings plus the static credential table.
type Config struct {
	Port        string     `yaml:"port"`
	UploadsDir  string     `yaml:"uploads_dir"`
	SessionTTL  *Duration  `yaml:"session_ttl"`
	CORSOrigins []string   `yaml:"cors_origins"`
	Users       []UserSpec `yaml:"users"`
}

// SessionDuration returns the configured session TTL. Zero disables expiry;
// the nil case only exists before Load applies the default.
func (c *Config) SessionDuration() time.Duration {
	if c.SessionTTL == nil {
		return 0
	}
	return time.Duration(*c.SessionTTL)
}

// UserSpec is one credential entry as written in the config file.
type UserSpec struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Duration wraps time.Duration so YAML values like "24h" parse directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads configuration from an optional YAML file, applies environment
// variable overrides, and fills in defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Port = getEnv("PICSHELF_PORT", cfg.Port)
	cfg.UploadsDir = getEnv("PICSHELF_UPLOADS_DIR", cfg.UploadsDir)

	if cfg.Port == "" {
		cfg.Port = "5001"
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}
	// An absent key gets the default; an explicit 0 disables expiry.
	if cfg.SessionTTL == nil {
		ttl := Duration(24 * time.Hour)
		cfg.SessionTTL = &ttl
	}
	if len(cfg.Users) == 0 {
		cfg.Users = defaultUsers()
	}

	if _, err := cfg.Credentials(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Credentials converts the configured user entries into a lookup table,
// validating roles and rejecting duplicate usernames.
func (c *Config) Credentials() (auth.Credentials, error) {
	creds := make(auth.Credentials, len(c.Users))
	for _, u := range c.Users {
		if u.Username == "" {
			return nil, fmt.Errorf("user entry with empty username")
		}
		if _, ok := creds[u.Username]; ok {
			return nil, fmt.Errorf("duplicate user %q", u.Username)
		}
		role, err := models.ParseRole(u.Role)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Username, err)
		}
		creds[u.Username] = auth.Credential{Password: u.Password, Role: role}
	}
	return creds, nil
}

// defaultUsers mirrors the development credential table. Replace via the
// config file for anything beyond local use.
func defaultUsers() []UserSpec {
	return []UserSpec{
		{Username: "user", Password: "password", Role: "normal"},
		{Username: "admin", Password: "adminpassword", Role: "admin"},
	}
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
