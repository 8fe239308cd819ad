// Package config loads runtime configuration for the Around terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-auth string          auth backend base URL
//	-api string           content backend base URL
//	-db string            path of the local session database
//	-l int                minimum latency of mutations (milliseconds, 0 disables)
//	-t int                HTTP request timeout (seconds)
//	-lang string          notification language (en, es)
//	-v                    verbose (debug) logging
//	-s3-endpoint string   S3-compatible endpoint for avatar uploads
//	-s3-bucket string     bucket for avatar uploads
//	-s3-region string     bucket region
//	-s3-public-url string public base URL of uploaded objects
//	-s3-user string       access key
//	-s3-password string   secret key
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "1s" or
// integer nanoseconds. Only keys present in the file override defaults:
//
//	{
//	  "auth_url": "http://127.0.0.1:8080/auth",
//	  "api_url": "http://127.0.0.1:8080/api",
//	  "db_path": "session.db",
//	  "min_latency": "1s",
//	  "request_timeout": "15s",
//	  "language": "es",
//	  "verbose": false,
//	  "avatar": {"endpoint": "http://127.0.0.1:9000", "bucket": "around"}
//	}
package config
