package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shad03152015/HotRide/internal/auth"
)

// scriptedStore returns canned results and records calls, so tests can
// stage create races that an in-memory map cannot express.
type scriptedStore struct {
	byEmail     map[string]*auth.User
	byOAuth     map[string]*auth.User
	createErr   error
	created     []*auth.NewUser
	emailCalls  int
	afterCreate *auth.User
}

func newScriptedStore() *scriptedStore {
	return &scriptedStore{
		byEmail: map[string]*auth.User{},
		byOAuth: map[string]*auth.User{},
	}
}

func (s *scriptedStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s.emailCalls++
	// afterCreate models an account that only became visible once a
	// concurrent create committed.
	if s.afterCreate != nil && len(s.created) == 0 && s.emailCalls > 1 {
		return s.afterCreate, nil
	}
	return s.byEmail[email], nil
}

func (s *scriptedStore) FindByPhone(_ context.Context, phone string) (*auth.User, error) {
	return nil, nil
}

func (s *scriptedStore) FindByOAuth(_ context.Context, provider auth.Provider, oauthID string) (*auth.User, error) {
	return s.byOAuth[string(provider)+":"+oauthID], nil
}

func (s *scriptedStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	return nil, nil
}

func (s *scriptedStore) Create(_ context.Context, u *auth.NewUser) (*auth.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, u)
	return &auth.User{
		ID:                fmt.Sprintf("user-%d", len(s.created)),
		Email:             u.Email,
		OAuthProvider:     u.OAuthProvider,
		OAuthID:           u.OAuthID,
		FullName:          u.FullName,
		ProfilePictureURL: u.ProfilePictureURL,
		IsActive:          u.IsActive,
		IsEmailVerified:   u.IsEmailVerified,
	}, nil
}

func (s *scriptedStore) Update(_ context.Context, id string, upd auth.UserUpdate) (*auth.User, error) {
	return nil, nil
}

func googleIdentity() *auth.ExternalIdentity {
	return &auth.ExternalIdentity{
		Provider:      auth.ProviderGoogle,
		Subject:       "google-sub-1",
		Email:         "Jane@Example.com",
		EmailVerified: true,
		FullName:      "Jane Doe",
		PictureURL:    "https://example.com/jane.png",
	}
}

func TestResolveCreatesAccountOnFirstSignIn(t *testing.T) {
	users := newScriptedStore()
	r := NewStoreResolver(users)

	user, err := r.Resolve(context.Background(), googleIdentity())
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	created := users.created[0]
	assert.Equal(t, "jane@example.com", *created.Email)
	assert.Equal(t, auth.ProviderGoogle, created.OAuthProvider)
	assert.Equal(t, "google-sub-1", *created.OAuthID)
	assert.Equal(t, "Jane Doe", *created.FullName)
	assert.True(t, created.IsActive)
	assert.True(t, created.IsEmailVerified)

	assert.Equal(t, auth.ProviderGoogle, user.OAuthProvider)
}

func TestResolveLogsInMatchingProvider(t *testing.T) {
	users := newScriptedStore()
	existing := &auth.User{ID: "user-1", OAuthProvider: auth.ProviderGoogle}
	users.byEmail["jane@example.com"] = existing

	r := NewStoreResolver(users)
	user, err := r.Resolve(context.Background(), googleIdentity())
	require.NoError(t, err)
	assert.Same(t, existing, user)
	assert.Empty(t, users.created)
}

func TestResolveProviderMismatchConflicts(t *testing.T) {
	users := newScriptedStore()
	users.byEmail["jane@example.com"] = &auth.User{ID: "user-1", OAuthProvider: auth.ProviderEmail}

	r := NewStoreResolver(users)
	_, err := r.Resolve(context.Background(), googleIdentity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrConflict))
}

func TestResolveCreateRaceRecovers(t *testing.T) {
	users := newScriptedStore()
	users.createErr = fmt.Errorf("%w", auth.ErrConflict)
	users.afterCreate = &auth.User{ID: "user-9", OAuthProvider: auth.ProviderGoogle}

	r := NewStoreResolver(users)
	user, err := r.Resolve(context.Background(), googleIdentity())
	require.NoError(t, err)
	assert.Equal(t, "user-9", user.ID)
	assert.Equal(t, 2, users.emailCalls)
}

func TestResolveCreateRaceMismatchedProvider(t *testing.T) {
	users := newScriptedStore()
	users.createErr = fmt.Errorf("%w", auth.ErrConflict)
	users.afterCreate = &auth.User{ID: "user-9", OAuthProvider: auth.ProviderApple}

	r := NewStoreResolver(users)
	_, err := r.Resolve(context.Background(), googleIdentity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrConflict))
}

func TestResolveCreateRaceStillMissing(t *testing.T) {
	users := newScriptedStore()
	users.createErr = fmt.Errorf("%w", auth.ErrConflict)

	r := NewStoreResolver(users)
	_, err := r.Resolve(context.Background(), googleIdentity())
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrConflict))
}

func TestResolveWithoutEmailFindsRepeatSignIn(t *testing.T) {
	users := newScriptedStore()
	existing := &auth.User{ID: "user-1", OAuthProvider: auth.ProviderApple}
	users.byOAuth["apple:apple-sub-1"] = existing

	r := NewStoreResolver(users)
	user, err := r.Resolve(context.Background(), &auth.ExternalIdentity{
		Provider: auth.ProviderApple,
		Subject:  "apple-sub-1",
	})
	require.NoError(t, err)
	assert.Same(t, existing, user)
}

func TestResolveWithoutEmailNoAccount(t *testing.T) {
	r := NewStoreResolver(newScriptedStore())

	_, err := r.Resolve(context.Background(), &auth.ExternalIdentity{
		Provider: auth.ProviderApple,
		Subject:  "apple-sub-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrMissingEmail))
}

func TestResolveRejectsEmailProvider(t *testing.T) {
	r := NewStoreResolver(newScriptedStore())

	_, err := r.Resolve(context.Background(), &auth.ExternalIdentity{
		Provider: auth.ProviderEmail,
		Subject:  "x",
		Email:    "a@x.com",
	})
	require.Error(t, err)
}

func TestResolveNilIdentity(t *testing.T) {
	r := NewStoreResolver(newScriptedStore())
	_, err := r.Resolve(context.Background(), nil)
	require.Error(t, err)
}
