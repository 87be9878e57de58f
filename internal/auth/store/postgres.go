package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/db"

	"github.com/google/uuid"
)

const userColumns = `
	id, email, phone, password_hash, oauth_provider, oauth_id,
	full_name, profile_picture_url,
	is_active, is_email_verified, is_phone_verified,
	created_at, updated_at`

// PostgresStore is the canonical UserStore backed by the users table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	return s.findOne(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)
}

func (s *PostgresStore) FindByPhone(ctx context.Context, phone string) (*auth.User, error) {
	return s.findOne(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE phone = $1
	`, phone)
}

func (s *PostgresStore) FindByOAuth(
	ctx context.Context,
	provider auth.Provider,
	oauthID string,
) (*auth.User, error) {
	return s.findOne(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE oauth_provider = $1
		  AND oauth_id = $2
	`, string(provider), oauthID)
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*auth.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return s.findOne(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, userID)
}

func (s *PostgresStore) Create(ctx context.Context, u *auth.NewUser) (*auth.User, error) {
	provider := u.OAuthProvider
	if provider == "" {
		provider = auth.ProviderEmail
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (
			email, phone, password_hash, oauth_provider, oauth_id,
			full_name, profile_picture_url,
			is_active, is_email_verified, is_phone_verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+userColumns+`
	`,
		lowerPtr(u.Email),
		u.Phone,
		u.PasswordHash,
		string(provider),
		u.OAuthID,
		u.FullName,
		u.ProfilePictureURL,
		u.IsActive,
		u.IsEmailVerified,
		u.IsPhoneVerified,
	)

	created, err := scanUser(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("create user: %w", auth.ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) Update(
	ctx context.Context,
	id string,
	upd auth.UserUpdate,
) (*auth.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	sets := []string{"updated_at = NOW()"}
	args := []any{userID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FullName != nil {
		addSet("full_name", *upd.FullName)
	}
	if upd.ProfilePictureURL != nil {
		addSet("profile_picture_url", *upd.ProfilePictureURL)
	}
	if upd.Phone != nil {
		addSet("phone", *upd.Phone)
	}
	if upd.IsActive != nil {
		addSet("is_active", *upd.IsActive)
	}
	if upd.IsEmailVerified != nil {
		addSet("is_email_verified", *upd.IsEmailVerified)
	}
	if upd.IsPhoneVerified != nil {
		addSet("is_phone_verified", *upd.IsPhoneVerified)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(sets, ", "), userColumns)

	row := s.db.QueryRowContext(ctx, query, args...)
	updated, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("update user: %w", auth.ErrConflict)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) findOne(ctx context.Context, query string, args ...any) (*auth.User, error) {
	row := s.db.QueryRowContext(ctx, query, args...)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*auth.User, error) {
	var (
		u        auth.User
		id       uuid.UUID
		provider string
	)

	err := row.Scan(
		&id,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&provider,
		&u.OAuthID,
		&u.FullName,
		&u.ProfilePictureURL,
		&u.IsActive,
		&u.IsEmailVerified,
		&u.IsPhoneVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.ID = id.String()
	u.OAuthProvider = auth.Provider(provider)
	return &u, nil
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	lowered := strings.ToLower(*s)
	return &lowered
}
