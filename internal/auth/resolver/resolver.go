package resolver

import (
	"context"

	"github.com/shad03152015/HotRide/internal/auth"
)

// Resolver determines which account an external identity belongs to,
// creating one when warranted. It is the ONLY place where
// identity-to-account mapping logic lives.
type Resolver interface {
	Resolve(
		ctx context.Context,
		identity *auth.ExternalIdentity,
	) (*auth.User, error)
}
