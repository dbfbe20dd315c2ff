package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultCookieName = "refreshToken"
)

// Config describes the full policy surface of the token service: one signing
// secret and expiration per token class, plus the refresh-cookie policy.
// It is resolved once at construction; the service never re-reads
// configuration mid-operation.
type Config struct {
	Access        ClassPolicy  `envPrefix:"AUTH_JWT_ACCESS_"`
	Refresh       ClassPolicy  `envPrefix:"AUTH_JWT_REFRESH_"`
	Customer      ClassPolicy  `envPrefix:"AUTH_JWT_CUSTOMER_"`
	RefreshCookie CookiePolicy `envPrefix:"AUTH_JWT_REFRESH_COOKIE_"`
}

// ClassPolicy holds the signing secret and token lifetime for one class.
type ClassPolicy struct {
	Secret     string        `env:"SECRET"`
	Expiration time.Duration `env:"EXPIRATION"`
}

// CookiePolicy controls the browser delivery of refresh tokens. Path and
// HttpOnly are fixed by the service; only these attributes are policy.
type CookiePolicy struct {
	Name   string `env:"NAME"`
	MaxAge int    `env:"MAX_AGE"`
	Secure bool   `env:"SECURE"`
}

// validate ensures one class policy is usable.
func (p ClassPolicy) validate(class TokenClass) error {
	switch {
	case p.Secret == "":
		return fmt.Errorf("%s secret is required", class)
	case p.Expiration <= 0:
		return fmt.Errorf("%s expiration must be positive", class)
	}
	return nil
}

// normalize sets default values for optional fields.
func (c *Config) normalize() {
	if c.RefreshCookie.Name == "" {
		c.RefreshCookie.Name = defaultCookieName
	}
}

// validate ensures the configuration can back all three token classes.
func (c Config) validate() error {
	for class, policy := range map[TokenClass]ClassPolicy{
		ClassAccess:   c.Access,
		ClassRefresh:  c.Refresh,
		ClassCustomer: c.Customer,
	} {
		if err := policy.validate(class); err != nil {
			return err
		}
	}
	if c.RefreshCookie.MaxAge <= 0 {
		return errors.New("refresh cookie max age must be positive")
	}
	return nil
}

// resolve returns the policy table keyed by token class plus the normalized
// cookie policy, after checking every class is backed by a secret and a
// positive expiration. A missing key is a configuration fault at this point,
// never a runtime parsing fault.
func (c Config) resolve() (map[TokenClass]ClassPolicy, CookiePolicy, error) {
	clone := c
	clone.normalize()
	if err := clone.validate(); err != nil {
		return nil, CookiePolicy{}, newError(ErrCodeInvalidConfig, err)
	}
	index := map[TokenClass]ClassPolicy{
		ClassAccess:   clone.Access,
		ClassRefresh:  clone.Refresh,
		ClassCustomer: clone.Customer,
	}
	return index, clone.RefreshCookie, nil
}

// LoadConfig reads the policy surface from environment variables, loading a
// local .env file first when one exists. See the envPrefix tags on Config for
// the key names.
func LoadConfig() (Config, error) {
	// The .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, newError(ErrCodeInvalidConfig, fmt.Errorf("parse environment: %w", err))
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, newError(ErrCodeInvalidConfig, err)
	}
	return cfg, nil
}
