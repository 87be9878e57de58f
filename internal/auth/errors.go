package auth

import "errors"

// Error kinds shared by every auth component. Lower layers return these
// (usually wrapped); the HTTP layer maps each kind to a status code and a
// client-safe message. Anything that is not one of these becomes a generic
// 500 at the boundary.
var (
	ErrValidation         = errors.New("invalid request")
	ErrInvalidIdentifier  = errors.New("identifier is not a valid email or phone number")
	ErrNotFound           = errors.New("account not found")
	ErrConflict           = errors.New("account already exists")
	ErrUnauthorized       = errors.New("invalid credentials")
	ErrForbidden          = errors.New("account is suspended")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrMissingEmail       = errors.New("email not provided")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrDelivery           = errors.New("failed to deliver verification code")
	ErrRateLimited        = errors.New("too many requests")
)
