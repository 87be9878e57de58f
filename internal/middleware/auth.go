package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/token"
)

// unexported, collision-proof context key
type currentUserContextKeyType struct{}

var currentUserKey = currentUserContextKeyType{}

// CurrentUser extracts the authenticated user from context.
func CurrentUser(ctx context.Context) (*auth.User, bool) {
	u, ok := ctx.Value(currentUserKey).(*auth.User)
	return u, ok
}

// UserFinder is the store subset the middleware needs.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*auth.User, error)
}

// TokenVerifier validates a bearer token and returns its payload.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Payload, error)
}

// AuthMiddleware gates requests on a valid bearer token and an active
// account. The account is re-fetched on every request so deactivation
// takes effect immediately, regardless of token expiry.
type AuthMiddleware struct {
	Tokens TokenVerifier
	Users  UserFinder
}

func NewAuthMiddleware(tokens TokenVerifier, users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{
		Tokens: tokens,
		Users:  users,
	}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Extract bearer token from Authorization header
		tokenString, ok := bearerToken(r)
		if !ok {
			unauthorized(w, "authorization header missing or malformed")
			return
		}

		// 2. Verify signature and expiry
		payload, err := a.Tokens.Verify(tokenString)
		if err != nil {
			unauthorized(w, "could not validate credentials")
			return
		}

		// 3. Load the account; the token never caches account state
		user, err := a.Users.FindByID(r.Context(), payload.UserID)
		if err != nil || user == nil {
			unauthorized(w, "could not validate credentials")
			return
		}

		if !user.IsActive {
			writeJSONError(w, http.StatusForbidden, "account is suspended")
			return
		}

		// 4. Attach user to context
		ctx := context.WithValue(r.Context(), currentUserKey, user)

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, http.StatusUnauthorized, msg)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
