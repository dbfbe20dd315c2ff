package authtoken

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Service issues and validates signed, stateless tokens for the access,
// refresh, and customer token classes. Each class is bound to its own codec,
// resolved once from the configuration; no issued token is tracked or
// revocable. The service is safe for concurrent use.
type Service struct {
	codecs map[TokenClass]codec
	cookie CookiePolicy
}

// Option customizes service construction.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for expiration stamping and
// checking. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds a token service from the given configuration. A missing secret
// or non-positive expiration for any class is reported here as an
// ErrCodeInvalidConfig error; parse calls never surface configuration faults.
func New(cfg Config, opts ...Option) (*Service, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	index, cookie, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	codecs := make(map[TokenClass]codec, len(index))
	for class, policy := range index {
		codecs[class] = newCodec(policy, o.now)
	}

	return &Service{codecs: codecs, cookie: cookie}, nil
}

// GenerateAuthenticationToken mints an access token for the given user.
// The subject is the username; userId and isCrossAppAuth always travel as
// extension claims, role only when a comma-separated authorities string is
// supplied.
func (s *Service) GenerateAuthenticationToken(userID int64, username string, crossAppAuth bool, authorities string) (string, error) {
	return s.generateUserToken(ClassAccess, userID, username, crossAppAuth, authorities)
}

// GenerateRefreshToken mints a refresh token carrying the same claims as an
// access token, signed under the refresh secret.
func (s *Service) GenerateRefreshToken(userID int64, username string, crossAppAuth bool, authorities string) (string, error) {
	return s.generateUserToken(ClassRefresh, userID, username, crossAppAuth, authorities)
}

func (s *Service) generateUserToken(class TokenClass, userID int64, username string, crossAppAuth bool, authorities string) (string, error) {
	extra := map[string]any{
		claimUserID:       userID,
		claimCrossAppAuth: crossAppAuth,
	}
	if authorities != "" {
		extra[claimRole] = authorities
	}
	return s.codecs[class].encode(username, extra)
}

// ParseAccessToken validates an access token and recovers the identity it
// carries. An expired token is reported with ErrCodeExpired so the caller can
// drive a refresh flow; every other failure collapses into
// ErrCodeInvalidToken.
func (s *Service) ParseAccessToken(token string) (*ApiUser, error) {
	return s.parseUserToken(ClassAccess, token)
}

// ParseRefreshToken validates a refresh token under the refresh secret, with
// the same failure contract as ParseAccessToken.
func (s *Service) ParseRefreshToken(token string) (*ApiUser, error) {
	return s.parseUserToken(ClassRefresh, token)
}

func (s *Service) parseUserToken(class TokenClass, raw string) (*ApiUser, error) {
	token, err := s.codecs[class].decode(raw)
	if err != nil {
		return nil, err
	}
	user, err := apiUserFromToken(token)
	if err != nil {
		// Verified signature but claims we cannot use; the bearer string
		// still proves nothing to us.
		return nil, newError(ErrCodeInvalidToken, err)
	}
	return user, nil
}

// GenerateCustomerToken mints a customer token whose subject is the
// stringified customer id and which carries no extension claims.
func (s *Service) GenerateCustomerToken(customerID int64) (string, error) {
	return s.codecs[ClassCustomer].encode(strconv.FormatInt(customerID, 10), nil)
}

// ParseCustomerToken recovers the customer id from a customer token. Unlike
// the access/refresh parsers it does not report expiration separately: an
// expired customer token is as useless to the caller as a forged one, so
// both come back as ErrCodeInvalidToken.
func (s *Service) ParseCustomerToken(token string) (int64, error) {
	parsed, err := s.codecs[ClassCustomer].decode(token)
	if err != nil {
		if IsExpired(err) {
			return 0, newError(ErrCodeInvalidToken, err)
		}
		return 0, err
	}
	id, err := strconv.ParseInt(parsed.Subject(), 10, 64)
	if err != nil {
		return 0, newError(ErrCodeInvalidToken, fmt.Errorf("subject is not a customer id: %w", err))
	}
	return id, nil
}

// BuildRefreshTokenCookie wraps a refresh token in the cookie handed to the
// HTTP response layer. Path and HttpOnly are fixed; name, max age, and the
// secure flag come from the cookie policy.
func (s *Service) BuildRefreshTokenCookie(refreshToken string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookie.Name,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   s.cookie.MaxAge,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
	}
}

// Authenticate resolves the caller identity from an inbound request's bearer
// token, validated as an access token. It is the hook request-level
// consumers, such as CustomerStateService implementations, build on.
func (s *Service) Authenticate(r *http.Request) (*ApiUser, error) {
	return s.ParseAccessToken(TokenFromRequest(r))
}
