package config

import (
	"time"

	"github.com/dmitrijs2005/around/internal/client/avatar"
)

const (
	DefaultAuthURL = "https://se-register-api.en.tripleten-services.com/v1"
	DefaultAPIURL  = "https://around-api.es.tripleten-services.com/v1"
)

type Config struct {
	AuthURL        string
	APIURL         string
	DBPath         string
	MinLatency     time.Duration
	RequestTimeout time.Duration
	Language       string
	Verbose        bool
	Avatar         avatar.Config
}

func (c *Config) LoadDefaults() {
	c.AuthURL = DefaultAuthURL
	c.APIURL = DefaultAPIURL
	c.DBPath = "around.db"
	c.MinLatency = time.Second
	c.RequestTimeout = 15 * time.Second
	c.Language = "en"
	c.Avatar = avatar.Config{Region: "us-east-1"}
}

// Load builds a Config from defaults, the optional JSON file and flags in
// args (os.Args[1:]).
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
