package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/token"
)

type stubVerifier struct {
	payload *token.Payload
	err     error
	seen    string
}

func (s *stubVerifier) Verify(tokenString string) (*token.Payload, error) {
	s.seen = tokenString
	return s.payload, s.err
}

type stubFinder struct {
	user *auth.User
	err  error
}

func (s *stubFinder) FindByID(_ context.Context, id string) (*auth.User, error) {
	return s.user, s.err
}

func runRequireAuth(t *testing.T, mw *AuthMiddleware, header string) (*httptest.ResponseRecorder, *auth.User) {
	t.Helper()

	var seen *auth.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestRequireAuthSuccess(t *testing.T) {
	user := &auth.User{ID: "user-1", IsActive: true}
	verifier := &stubVerifier{payload: &token.Payload{UserID: "user-1"}}
	mw := NewAuthMiddleware(verifier, &stubFinder{user: user})

	rec, seen := runRequireAuth(t, mw, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", verifier.seen)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.ID)
}

func TestRequireAuthLowercaseScheme(t *testing.T) {
	user := &auth.User{ID: "user-1", IsActive: true}
	mw := NewAuthMiddleware(
		&stubVerifier{payload: &token.Payload{UserID: "user-1"}},
		&stubFinder{user: user},
	)

	rec, _ := runRequireAuth(t, mw, "bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubVerifier{}, &stubFinder{})

	rec, _ := runRequireAuth(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubVerifier{}, &stubFinder{})

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		rec, _ := runRequireAuth(t, mw, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("bad token")}
	mw := NewAuthMiddleware(verifier, &stubFinder{})

	rec, _ := runRequireAuth(t, mw, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthUserGone(t *testing.T) {
	// Valid token for an account that no longer exists.
	mw := NewAuthMiddleware(
		&stubVerifier{payload: &token.Payload{UserID: "user-1"}},
		&stubFinder{user: nil},
	)

	rec, _ := runRequireAuth(t, mw, "Bearer good-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthSuspendedUser(t *testing.T) {
	mw := NewAuthMiddleware(
		&stubVerifier{payload: &token.Payload{UserID: "user-1"}},
		&stubFinder{user: &auth.User{ID: "user-1", IsActive: false}},
	)

	rec, _ := runRequireAuth(t, mw, "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "suspended")
}

func TestCurrentUserAbsent(t *testing.T) {
	_, ok := CurrentUser(context.Background())
	assert.False(t, ok)
}
