package config

import (
	"errors"

	"github.com/github/go-config"
)

// Config holds application configuration, read from the environment.
type Config struct {
	HTTPPort int `config:"8080,env=ACT2GPX_HTTP_PORT"`

	StravaClientID int    `config:"0,env=STRAVA_CLIENT_ID"`
	StravaSecretID string `config:",env=STRAVA_SECRET_ID"`
	TokenFile      string `config:"/tmp/act2gpx-token.json,env=ACT2GPX_TOKEN_FILE"`
}

// ErrMissingStravaCredentials is returned when uploading without Strava credentials
var ErrMissingStravaCredentials = errors.New("please provide your Strava's client_id and client_secret")

// Load parses configuration from the environment and places it in a newly
// allocated Config struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateStrava checks the Strava credentials are set
func (c *Config) ValidateStrava() error {
	if c.StravaClientID <= 0 || c.StravaSecretID == "" {
		return ErrMissingStravaCredentials
	}
	return nil
}
