package apple

import (
	"context"
	"errors"
	"fmt"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/provider"
	"github.com/shad03152015/HotRide/internal/logger"

	"github.com/coreos/go-oidc/v3/oidc"
)

const (
	issuerURL = "https://appleid.apple.com"
	jwksURL   = "https://appleid.apple.com/auth/keys"
)

// Verifier validates Apple identity tokens against Apple's published
// signing keys. Apple only discloses the user's email in the first
// sign-in token; later tokens carry the subject alone, so callers must
// be able to resolve identity from the subject.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

func New(ctx context.Context, clientID string) (*Verifier, error) {
	if clientID == "" {
		return nil, errors.New("apple client id missing")
	}

	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)

	verifier := oidc.NewVerifier(issuerURL, keySet, &oidc.Config{
		ClientID: clientID,
	})

	return &Verifier{verifier: verifier}, nil
}

// Verify validates the identity token's signature, audience, expiry, and
// issuer. If the token carries a nonce claim it must equal the nonce the
// client used when requesting sign-in.
func (v *Verifier) Verify(ctx context.Context, rawToken string, nonce string) (*auth.ExternalIdentity, error) {
	ctx, cancel := provider.WithRequestTimeout(ctx)
	defer cancel()

	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		expired, unavailable := provider.ClassifyVerifyError(err)
		switch {
		case unavailable:
			logger.Error("apple token verification unavailable", map[string]any{
				"error": err.Error(),
			})
			return nil, fmt.Errorf("%w: apple sign in is temporarily unavailable", auth.ErrServiceUnavailable)
		case expired:
			return nil, fmt.Errorf("%w: apple identity token expired", auth.ErrExpiredToken)
		default:
			return nil, fmt.Errorf("%w: apple identity token verification failed", auth.ErrInvalidToken)
		}
	}

	if idToken.Nonce != "" && idToken.Nonce != nonce {
		return nil, fmt.Errorf("%w: apple token nonce mismatch", auth.ErrInvalidToken)
	}

	var claims struct {
		Subject       string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified any    `json:"email_verified"` // Apple sends bool or "true"/"false"
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: apple identity token claims parse failed", auth.ErrInvalidToken)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: apple identity token missing subject", auth.ErrInvalidToken)
	}

	return &auth.ExternalIdentity{
		Provider:      auth.ProviderApple,
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: parseEmailVerified(claims.EmailVerified),
	}, nil
}

func parseEmailVerified(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	}
	return false
}
