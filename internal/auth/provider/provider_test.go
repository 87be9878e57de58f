package provider

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyVerifyError(t *testing.T) {
	cases := []struct {
		name            string
		err             error
		wantExpired     bool
		wantUnavailable bool
	}{
		{"expired token", &oidc.TokenExpiredError{}, true, false},
		{"wrapped expired token", fmt.Errorf("verify: %w", &oidc.TokenExpiredError{}), true, false},
		// go-oidc reports key-fetch failures as flattened message text,
		// not as a wrapped net/url error.
		{
			"flattened key fetch failure",
			errors.New(`failed to verify signature: fetching keys oidc: get keys failed Get "https://issuer/keys": connection refused`),
			false, true,
		},
		{
			"flattened key fetch timeout",
			errors.New(`failed to verify signature: fetching keys oidc: get keys failed Get "https://issuer/keys": context deadline exceeded`),
			false, true,
		},
		{"deadline", context.DeadlineExceeded, false, true},
		{"bad signature", errors.New("failed to verify signature: no matching keys"), false, false},
		{"nil", nil, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expired, unavailable := ClassifyVerifyError(tc.err)
			assert.Equal(t, tc.wantExpired, expired)
			assert.Equal(t, tc.wantUnavailable, unavailable)
		})
	}
}

// A structurally valid token verified against an unreachable key endpoint
// must classify as issuer-unavailable, not as a bad token.
func TestClassifyVerifyErrorUnreachableKeySet(t *testing.T) {
	const (
		issuer   = "https://issuer.example"
		clientID = "client-id"
	)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	now := time.Now()
	rawToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss": issuer,
		"aud": clientID,
		"sub": "user-1",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(key)
	require.NoError(t, err)

	ctx := context.Background()
	keySet := oidc.NewRemoteKeySet(ctx, "http://127.0.0.1:1/keys")
	verifier := oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID})

	_, err = verifier.Verify(ctx, rawToken)
	require.Error(t, err)

	expired, unavailable := ClassifyVerifyError(err)
	assert.False(t, expired)
	assert.True(t, unavailable, "key-fetch failure classified as bad token: %v", err)
}
