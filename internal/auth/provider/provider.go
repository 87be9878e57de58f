package provider

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Verification failures fall into three kinds the HTTP layer reports
// differently: a bad token (fix credentials), an expired token, and the
// issuer being unreachable (retry later). Implementations return identity
// facts only and must not perform user creation, linking, or session
// management.

const requestTimeout = 10 * time.Second

// WithRequestTimeout bounds a verification call so a slow issuer cannot
// hang the request.
func WithRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}

// go-oidc flattens a failed JWKS fetch into the error message instead of
// wrapping the transport error, so the underlying net/url error is not
// reachable through errors.As. The "fetching keys" marker is the stable
// prefix remoteKeySet puts on every key-fetch failure, network or timeout.
const keyFetchFailureMarker = "fetching keys"

// ClassifyVerifyError separates issuer-unreachable faults from token
// faults. go-oidc fetches signing keys lazily, so a network fault surfaces
// from Verify itself.
func ClassifyVerifyError(err error) (expired bool, unavailable bool) {
	if err == nil {
		return false, false
	}

	var expiredErr *oidc.TokenExpiredError
	if errors.As(err, &expiredErr) {
		return true, false
	}

	if strings.Contains(err.Error(), keyFetchFailureMarker) {
		return false, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return false, true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return false, true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return false, true
	}

	return false, false
}
