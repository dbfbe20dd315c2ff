package authtoken

import (
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenClass identifies which secret and expiration policy a token is bound
// to. Classes are never interchangeable: a token signed under one class's
// secret fails closed under any other.
type TokenClass string

const (
	ClassAccess   TokenClass = "access"
	ClassRefresh  TokenClass = "refresh"
	ClassCustomer TokenClass = "customer"
)

// Claim names carried in the token payload beyond the registered sub/exp.
const (
	claimUserID       = "userId"
	claimCrossAppAuth = "isCrossAppAuth"
	claimRole         = "role"
)

// ApiUser is the decoded, validated identity recovered from an access or
// refresh token. It is derived only from a verified claim set and is never
// constructed independently. An empty Role means the token carried no
// authorities.
type ApiUser struct {
	Username     string
	UserID       int64
	CrossAppAuth bool
	Role         string
}

// apiUserFromToken maps a verified token's claims onto an ApiUser.
func apiUserFromToken(token jwt.Token) (*ApiUser, error) {
	user := &ApiUser{Username: token.Subject()}

	v, ok := token.Get(claimUserID)
	if !ok {
		return nil, fmt.Errorf("missing %q claim", claimUserID)
	}
	id, err := toInt64(v)
	if err != nil {
		return nil, fmt.Errorf("claim %q: %w", claimUserID, err)
	}
	user.UserID = id

	v, ok = token.Get(claimCrossAppAuth)
	if !ok {
		return nil, fmt.Errorf("missing %q claim", claimCrossAppAuth)
	}
	cross, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("claim %q is not a boolean", claimCrossAppAuth)
	}
	user.CrossAppAuth = cross

	if v, ok := token.Get(claimRole); ok {
		role, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("claim %q is not a string", claimRole)
		}
		user.Role = role
	}

	return user, nil
}

// toInt64 normalizes the numeric forms a JSON round trip can produce.
// The wire width is fixed to int64 on encode; this only papers over how the
// decoder chooses to represent the number.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0, fmt.Errorf("number %v does not fit an int64 exactly", n)
		}
		return i, nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("unexpected numeric type %T", v)
	}
}
