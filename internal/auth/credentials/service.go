package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/store"
)

// Service handles password-based registration and login against the
// user store.
type Service struct {
	users store.UserStore
}

func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

// Register creates a new email/password account. The account starts with
// an unverified email; no session is issued until the email is verified.
// Any existing account with the same email, whatever its provider, is a
// conflict.
func (s *Service) Register(
	ctx context.Context,
	fullName string,
	email string,
	password string,
) (*auth.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: an account with this email already exists", auth.ErrConflict)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	newUser := &auth.NewUser{
		Email:         &email,
		PasswordHash:  &hash,
		OAuthProvider: auth.ProviderEmail,
		IsActive:      true,
	}
	if fullName != "" {
		newUser.FullName = &fullName
	}

	// The unique index still guards against a concurrent register with the
	// same email; the store surfaces that as auth.ErrConflict.
	return s.users.Create(ctx, newUser)
}

// Authenticate verifies an identifier/password pair and returns the
// matching account.
func (s *Service) Authenticate(
	ctx context.Context,
	identifier string,
	password string,
) (*auth.User, error) {

	kind, err := ClassifyIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	var user *auth.User
	switch kind {
	case IdentifierEmail:
		user, err = s.users.FindByEmail(ctx, identifier)
	case IdentifierPhone:
		user, err = s.users.FindByPhone(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, fmt.Errorf("%w: no account found with this email/phone", auth.ErrNotFound)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w", auth.ErrForbidden)
	}

	// OAuth-only accounts have no password hash and cannot log in here.
	if user.PasswordHash == nil {
		return nil, fmt.Errorf("%w", auth.ErrUnauthorized)
	}

	if !VerifyPassword(*user.PasswordHash, password) {
		return nil, fmt.Errorf("%w", auth.ErrUnauthorized)
	}

	return user, nil
}
