package authtoken

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Numeric private claims must decode as json.Number: the default float64
// decoding loses integer precision above 2^53.
func init() {
	jwx.DecoderSettings(jwx.WithUseNumber(true))
}

// codec signs and verifies compact tokens for a single token class. It holds
// the class's secret and lifetime, resolved once from the configuration, and
// nothing else: every call captures its own timestamp and shares no mutable
// state.
type codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newCodec(policy ClassPolicy, now func() time.Time) codec {
	return codec{
		secret: []byte(policy.Secret),
		ttl:    policy.Expiration,
		now:    now,
	}
}

// encode builds a token with the given subject and extension claims, sets the
// expiration to now+ttl, and signs it with HMAC-SHA-512. The output is
// deterministic for identical inputs at the same instant.
func (c codec) encode(subject string, extra map[string]any) (string, error) {
	builder := jwt.NewBuilder().
		Subject(subject).
		Expiration(c.now().Add(c.ttl))
	for name, value := range extra {
		builder = builder.Claim(name, value)
	}

	token, err := builder.Build()
	if err != nil {
		return "", err
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS512, c.secret))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// decode parses and verifies a compact token. Structure and signature are
// checked first: any failure there yields ErrCodeInvalidToken, without
// distinguishing why, because the caller's remedy is the same either way.
// Only a token that already proved authentic can come back as
// ErrCodeExpired.
func (c codec) decode(raw string) (jwt.Token, error) {
	if raw == "" {
		return nil, newError(ErrCodeInvalidToken, errors.New("token is empty"))
	}

	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS512, c.secret),
		jwt.WithValidate(false),
	)
	if err != nil {
		return nil, newError(ErrCodeInvalidToken, err)
	}

	if err := jwt.Validate(token, jwt.WithClock(jwt.ClockFunc(c.now))); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return nil, newError(ErrCodeExpired, err)
		}
		return nil, newError(ErrCodeInvalidToken, err)
	}

	return token, nil
}
