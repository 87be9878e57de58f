package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/store"
)

// StoreResolver resolves external identities against the user store.
type StoreResolver struct {
	users store.UserStore
}

func NewStoreResolver(users store.UserStore) *StoreResolver {
	return &StoreResolver{users: users}
}

// Resolve maps a verified external identity onto an account.
//
// With an email: the email owns the decision. An existing account under a
// different provider is a conflict, never a merge; a matching-provider
// account logs in; no account means a new one is created. Two concurrent
// first sign-ins can both pass the lookup, so a create rejected by the
// uniqueness constraint triggers one re-lookup before a conflict is
// surfaced.
//
// Without an email (Apple repeat sign-ins): the account is found by
// (provider, subject); there is nothing to create an account from if that
// lookup misses.
func (r *StoreResolver) Resolve(
	ctx context.Context,
	identity *auth.ExternalIdentity,
) (*auth.User, error) {

	if identity == nil {
		return nil, errors.New("identity is nil")
	}

	switch identity.Provider {
	case auth.ProviderGoogle, auth.ProviderApple:
	case auth.ProviderEmail:
		return nil, fmt.Errorf("provider %q is not an external identity provider", identity.Provider)
	default:
		return nil, fmt.Errorf("unknown provider %q", identity.Provider)
	}

	if identity.Email == "" {
		user, err := r.users.FindByOAuth(ctx, identity.Provider, identity.Subject)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: email not provided by %s", auth.ErrMissingEmail, identity.Provider)
		}
		return user, nil
	}

	email := strings.ToLower(identity.Email)

	existing, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return r.loginExisting(existing, identity)
	}

	created, err := r.createUser(ctx, identity, email)
	if !errors.Is(err, auth.ErrConflict) {
		return created, err
	}

	// Lost a create race; the concurrent request's account should now be
	// visible.
	existing, lookupErr := r.users.FindByEmail(ctx, email)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if existing == nil {
		return nil, err
	}
	return r.loginExisting(existing, identity)
}

func (r *StoreResolver) loginExisting(
	user *auth.User,
	identity *auth.ExternalIdentity,
) (*auth.User, error) {
	if user.OAuthProvider != identity.Provider {
		return nil, fmt.Errorf(
			"%w: an account with this email already exists, please log in with the original method",
			auth.ErrConflict,
		)
	}
	return user, nil
}

func (r *StoreResolver) createUser(
	ctx context.Context,
	identity *auth.ExternalIdentity,
	email string,
) (*auth.User, error) {

	newUser := &auth.NewUser{
		Email:           &email,
		OAuthProvider:   identity.Provider,
		OAuthID:         &identity.Subject,
		IsActive:        true,
		IsEmailVerified: identity.EmailVerified,
	}
	if identity.FullName != "" {
		newUser.FullName = &identity.FullName
	}
	if identity.PictureURL != "" {
		newUser.ProfilePictureURL = &identity.PictureURL
	}

	return r.users.Create(ctx, newUser)
}
