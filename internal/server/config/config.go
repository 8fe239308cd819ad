// Package config handles configuration for the development backend,
// including defaults, JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps everything in memory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenTTL: lifetime of issued tokens.
//   - LogLevel: zerolog level name.
//   - AllowedOrigins: CORS origins.
type Config struct {
	Addr           string
	DatabaseDSN    string
	SecretKey      string
	TokenTTL       time.Duration
	LogLevel       string
	AllowedOrigins []string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenTTL = 7 * 24 * time.Hour
	c.LogLevel = "info"
	c.AllowedOrigins = []string{"*"}
}

// Load builds a Config by applying defaults, then overlaying values from an
// optional JSON file and finally from the flags in args (os.Args[1:]).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
