package authtoken

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestBindAndLookupApiUser(t *testing.T) {
	user := &ApiUser{Username: "alice", UserID: 101, Role: "ROLE_USER"}
	ctx := BindApiUser(context.Background(), user)

	got, ok := ApiUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user in context")
	}
	if got != user {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestApiUserFromEmptyContext(t *testing.T) {
	if _, ok := ApiUserFromContext(context.Background()); ok {
		t.Fatal("expected no user in fresh context")
	}
	if _, ok := ApiUserFromContext(nil); ok {
		t.Fatal("expected no user from nil context")
	}
}

func TestTokenFromRequest(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if got := TokenFromRequest(r); got != tc.want {
				t.Fatalf("TokenFromRequest = %q, want %q", got, tc.want)
			}
		})
	}

	if got := TokenFromRequest(nil); got != "" {
		t.Fatalf("TokenFromRequest(nil) = %q", got)
	}
}
