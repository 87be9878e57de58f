package google

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
	issuerURL = "https://accounts.google.com"
	jwksURL   = "https://www.googleapis.com/oauth2/v3/certs"
)

// Google issues tokens under two issuer spellings.
var allowedIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// Verifier validates Google ID tokens posted by mobile clients against
// Google's published signing keys.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

func New(ctx context.Context, clientID string) (*Verifier, error) {
	if clientID == "" {
		return nil, errors.New("google client id missing")
	}

	// Keys are fetched (and cached) lazily at verify time, so startup
	// never depends on Google being reachable.
	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)

	verifier := oidc.NewVerifier(issuerURL, keySet, &oidc.Config{
		ClientID: clientID,
		// Issuer has two accepted spellings; checked by hand below.
		SkipIssuerCheck: true,
	})

	return &Verifier{verifier: verifier}, nil
}

// Verify validates the ID token's signature, audience, expiry, and issuer,
// and returns the asserted identity.
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) (*auth.ExternalIdentity, error) {
	ctx, cancel := provider.WithRequestTimeout(ctx)
	defer cancel()

	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		expired, unavailable := provider.ClassifyVerifyError(err)
		switch {
		case unavailable:
			logger.Error("google token verification unavailable", map[string]any{
				"error": err.Error(),
			})
			return nil, fmt.Errorf("%w: google sign in is temporarily unavailable", auth.ErrServiceUnavailable)
		case expired:
			return nil, fmt.Errorf("%w: google id token expired", auth.ErrExpiredToken)
		default:
			return nil, fmt.Errorf("%w: google id token verification failed", auth.ErrInvalidToken)
		}
	}

	if !allowedIssuers[idToken.Issuer] {
		return nil, fmt.Errorf("%w: unexpected google token issuer", auth.ErrInvalidToken)
	}

	var claims struct {
		Subject       string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: google id token claims parse failed", auth.ErrInvalidToken)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: google id token missing subject", auth.ErrInvalidToken)
	}

	return &auth.ExternalIdentity{
		Provider:      auth.ProviderGoogle,
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		FullName:      claims.Name,
		PictureURL:    claims.Picture,
	}, nil
}
