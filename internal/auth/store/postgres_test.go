package store

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/db"
)

var userRowColumns = []string{
	"id", "email", "phone", "password_hash", "oauth_provider", "oauth_id",
	"full_name", "profile_picture_url",
	"is_active", "is_email_verified", "is_phone_verified",
	"created_at", "updated_at",
}

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return NewPostgresStore(&db.DB{DB: raw}), mock
}

func userRow(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userRowColumns).AddRow(
		id.String(), "jane@x.com", nil, "hash", "email", nil,
		"Jane Doe", nil,
		true, false, false,
		now, now,
	)
}

func TestFindByEmail(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectQuery("FROM users").
		WithArgs("jane@x.com").
		WillReturnRows(userRow(id))

	user, err := store.FindByEmail(context.Background(), "jane@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id.String(), user.ID)
	assert.Equal(t, "jane@x.com", *user.Email)
	assert.Nil(t, user.Phone)
	assert.Equal(t, auth.ProviderEmail, user.OAuthProvider)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := store.FindByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindByOAuth(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectQuery("FROM users").
		WithArgs("google", "google-sub-1").
		WillReturnRows(userRow(id))

	user, err := store.FindByOAuth(context.Background(), auth.ProviderGoogle, "google-sub-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id.String(), user.ID)
}

func TestFindByIDInvalidUUID(t *testing.T) {
	store, _ := newMockStore(t)

	// Never reaches the database.
	user, err := store.FindByID(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateLowercasesEmail(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	email := "Jane@X.com"
	hash := "hash"
	name := "Jane Doe"

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("jane@x.com", nil, "hash", "email", nil, "Jane Doe", nil, true, false, false).
		WillReturnRows(userRow(id))

	user, err := store.Create(context.Background(), &auth.NewUser{
		Email:        &email,
		PasswordHash: &hash,
		FullName:     &name,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, id.String(), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)

	email := "jane@x.com"
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := store.Create(context.Background(), &auth.NewUser{
		Email:    &email,
		IsActive: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrConflict))
}

func TestUpdateSetsOnlyGivenFields(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectQuery("UPDATE users").
		WithArgs(id.String(), true).
		WillReturnRows(userRow(id))

	verified := true
	user, err := store.Update(context.Background(), id.String(), auth.UserUpdate{
		IsEmailVerified: &verified,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingUser(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectQuery("UPDATE users").
		WithArgs(id.String(), "New Name").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	name := "New Name"
	user, err := store.Update(context.Background(), id.String(), auth.UserUpdate{
		FullName: &name,
	})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateInvalidUUID(t *testing.T) {
	store, _ := newMockStore(t)

	name := "New Name"
	user, err := store.Update(context.Background(), "not-a-uuid", auth.UserUpdate{
		FullName: &name,
	})
	require.NoError(t, err)
	assert.Nil(t, user)
}
