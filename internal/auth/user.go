package auth

import "time"

// Provider identifies the credential path that owns a user account.
// A user authenticated via one provider can never log in through another;
// cross-provider email collisions are conflicts, not merges.
type Provider string

const (
	ProviderEmail  Provider = "email"
	ProviderGoogle Provider = "google"
	ProviderApple  Provider = "apple"
)

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle, ProviderApple:
		return true
	}
	return false
}

// User is the stored account record unifying all credential types.
// Optional fields are pointers; absent values carry no uniqueness weight.
type User struct {
	ID                string
	Email             *string
	Phone             *string
	PasswordHash      *string
	OAuthProvider     Provider
	OAuthID           *string
	FullName          *string
	ProfilePictureURL *string
	IsActive          bool
	IsEmailVerified   bool
	IsPhoneVerified   bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUser carries the fields for account creation. The store assigns the
// id and timestamps.
type NewUser struct {
	Email             *string
	Phone             *string
	PasswordHash      *string
	OAuthProvider     Provider
	OAuthID           *string
	FullName          *string
	ProfilePictureURL *string
	IsActive          bool
	IsEmailVerified   bool
	IsPhoneVerified   bool
}

// UserUpdate lists mutable account fields. Nil fields are left untouched;
// the store refreshes updated_at on every applied update.
type UserUpdate struct {
	FullName          *string
	ProfilePictureURL *string
	Phone             *string
	IsActive          *bool
	IsEmailVerified   *bool
	IsPhoneVerified   *bool
}
