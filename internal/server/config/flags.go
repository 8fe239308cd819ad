package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/around/internal/flagx"
)

// parseFlags overlays the command-line flags on cfg.
//
//	-a string          listen address (e.g. ":8080")
//	-d string          PostgreSQL DSN; empty keeps data in memory
//	-s string          JWT HMAC secret key
//	-t int             token lifetime, minutes
//	-log-level string  zerolog level
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("around-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-log-level"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "t" {
			return
		}
		if *ttl <= 0 {
			err = fmt.Errorf("parse flags: token validity must be positive")
			return
		}
		cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	})
	return err
}
