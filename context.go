package authtoken

import (
	"context"
	"net/http"
	"strings"
)

type apiUserKey struct{}

// BindApiUser stores a validated identity inside the context for downstream
// consumers.
func BindApiUser(ctx context.Context, user *ApiUser) context.Context {
	return context.WithValue(ctx, apiUserKey{}, user)
}

// ApiUserFromContext retrieves the identity previously stored in the context.
func ApiUserFromContext(ctx context.Context) (*ApiUser, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(apiUserKey{}).(*ApiUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// TokenFromRequest extracts the bearer token from an inbound request's
// Authorization header. It returns an empty string when no bearer credential
// is present; the parsers treat that as any other invalid token.
func TokenFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
