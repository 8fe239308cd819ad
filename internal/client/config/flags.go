package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/around/internal/flagx"
)

var flagNames = []string{
	"-auth", "-api", "-db", "-l", "-t", "-lang", "-v",
	"-s3-endpoint", "-s3-bucket", "-s3-region", "-s3-public-url", "-s3-user", "-s3-password",
}

func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("around", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.AuthURL, "auth", cfg.AuthURL, "auth backend base URL")
	fs.StringVar(&cfg.APIURL, "api", cfg.APIURL, "content backend base URL")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "local session database")
	minLatency := fs.Int("l", int(cfg.MinLatency.Milliseconds()), "minimum latency of mutations (ms)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (s)")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "notification language")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	fs.StringVar(&cfg.Avatar.Endpoint, "s3-endpoint", cfg.Avatar.Endpoint, "S3 endpoint")
	fs.StringVar(&cfg.Avatar.Bucket, "s3-bucket", cfg.Avatar.Bucket, "S3 bucket")
	fs.StringVar(&cfg.Avatar.Region, "s3-region", cfg.Avatar.Region, "S3 region")
	fs.StringVar(&cfg.Avatar.PublicURL, "s3-public-url", cfg.Avatar.PublicURL, "public URL of uploaded objects")
	fs.StringVar(&cfg.Avatar.AccessKey, "s3-user", cfg.Avatar.AccessKey, "S3 access key")
	fs.StringVar(&cfg.Avatar.SecretKey, "s3-password", cfg.Avatar.SecretKey, "S3 secret key")

	if err := fs.Parse(flagx.FilterArgs(args, flagNames)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *minLatency < 0 || *timeout < 0 {
		return fmt.Errorf("parse flags: negative duration")
	}

	// durations are overridden only when given, so sub-unit JSON values survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.MinLatency = time.Duration(*minLatency) * time.Millisecond
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
