package db

import (
	"context"
	"database/sql"
)

// Unique indexes on users are partial so that absent values never collide:
// many accounts may have no phone, but a phone present in one account can
// appear nowhere else. Same for email and the (oauth_provider, oauth_id)
// pair.
const authMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text,
    phone text,
    password_hash text,
    oauth_provider text NOT NULL DEFAULT 'email',
    oauth_id text,
    full_name text,
    profile_picture_url text,
    is_active boolean NOT NULL DEFAULT true,
    is_email_verified boolean NOT NULL DEFAULT false,
    is_phone_verified boolean NOT NULL DEFAULT false,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email)) WHERE email IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS users_phone_unique
ON users (phone) WHERE phone IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS users_oauth_unique
ON users (oauth_provider, oauth_id) WHERE oauth_id IS NOT NULL;

CREATE INDEX IF NOT EXISTS users_is_active_idx
ON users (is_active);

CREATE TABLE IF NOT EXISTS verification_codes (
    identifier text NOT NULL,
    channel text NOT NULL,
    code text NOT NULL,
    verified boolean NOT NULL DEFAULT false,
    expires_at timestamptz NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    PRIMARY KEY (identifier, channel)
);
`

func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, authMigration)
	return err
}
