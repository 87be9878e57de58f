package store

import (
	"context"

	"github.com/shad03152015/HotRide/internal/auth"
)

// UserStore persists account records. Find methods return (nil, nil) when
// no record matches. Create returns auth.ErrConflict when a uniqueness
// constraint (email, phone, or oauth identity) is violated; uniqueness is
// enforced by the storage layer, not application checks.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	FindByPhone(ctx context.Context, phone string) (*auth.User, error)
	FindByOAuth(ctx context.Context, provider auth.Provider, oauthID string) (*auth.User, error)
	FindByID(ctx context.Context, id string) (*auth.User, error)
	Create(ctx context.Context, u *auth.NewUser) (*auth.User, error)
	Update(ctx context.Context, id string, upd auth.UserUpdate) (*auth.User, error)
}
