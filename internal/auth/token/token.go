package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/shad03152015/HotRide/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultExpiry = 24 * time.Hour

// Payload is what a verified session token asserts. Consumers must
// re-fetch the user by ID on every request; activation state is never
// cached inside the token.
type Payload struct {
	UserID string
	Email  string
}

// Issuer mints and verifies HS256 session tokens. Tokens are stateless:
// validity is signature plus expiry, with no revocation list.
type Issuer struct {
	secret []byte
	expiry time.Duration
}

func NewIssuer(secret string, expiry time.Duration) *Issuer {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Issuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue creates a signed session token for the user.
func (i *Issuer) Issue(userID string, email string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(i.expiry).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify validates a session token and returns its payload. Expired
// tokens and otherwise-invalid tokens are distinct error kinds.
func (i *Issuer) Verify(tokenString string) (*Payload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w", auth.ErrExpiredToken)
		}
		return nil, fmt.Errorf("%w", auth.ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w", auth.ErrInvalidToken)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("%w: missing subject", auth.ErrInvalidToken)
	}

	email, _ := claims["email"].(string)

	return &Payload{
		UserID: userID,
		Email:  email,
	}, nil
}
