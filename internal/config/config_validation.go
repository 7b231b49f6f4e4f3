package config

import (
	"errors"
	"time"
)

// Defaults applied when neither environment nor flags provide a value.
const (
	defaultHTTPAddress   = "localhost:8080"
	defaultTokenIssuer   = "expense-keeper"
	defaultTokenDuration = 24 * time.Hour
)

var (
	errNoDatabaseDSN = errors.New("database DSN is required")
	errNoSignKey     = errors.New("token sign key is required")
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server depends on at startup, filling in defaults for the
// optional fields first.
//
// The database DSN and the token sign key have no safe defaults and must be
// supplied explicitly.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}
	if cfg.App.TokenSignKey == "" {
		return errNoSignKey
	}

	return nil
}
