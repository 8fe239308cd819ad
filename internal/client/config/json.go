package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/around/internal/flagx"
	"github.com/dmitrijs2005/around/internal/timex"
)

// jsonConfig is used only for unmarshalling. Pointer fields tell absent
// keys from zero values.
type jsonConfig struct {
	AuthURL        *string         `json:"auth_url"`
	APIURL         *string         `json:"api_url"`
	DBPath         *string         `json:"db_path"`
	MinLatency     *timex.Duration `json:"min_latency"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Language       *string         `json:"language"`
	Verbose        *bool           `json:"verbose"`
	Avatar         *jsonAvatar     `json:"avatar"`
}

type jsonAvatar struct {
	Endpoint  *string `json:"endpoint"`
	Bucket    *string `json:"bucket"`
	Region    *string `json:"region"`
	PublicURL *string `json:"public_url"`
	AccessKey *string `json:"access_key"`
	SecretKey *string `json:"secret_key"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set(&cfg.AuthURL, jc.AuthURL)
	set(&cfg.APIURL, jc.APIURL)
	set(&cfg.DBPath, jc.DBPath)
	set(&cfg.Language, jc.Language)
	set(&cfg.Verbose, jc.Verbose)
	if jc.MinLatency != nil {
		cfg.MinLatency = jc.MinLatency.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if a := jc.Avatar; a != nil {
		set(&cfg.Avatar.Endpoint, a.Endpoint)
		set(&cfg.Avatar.Bucket, a.Bucket)
		set(&cfg.Avatar.Region, a.Region)
		set(&cfg.Avatar.PublicURL, a.PublicURL)
		set(&cfg.Avatar.AccessKey, a.AccessKey)
		set(&cfg.Avatar.SecretKey, a.SecretKey)
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
