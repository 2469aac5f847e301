package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// schema mirrors the embedded PostgreSQL migration in SQLite dialect.
const schema = `
CREATE TABLE user_account (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT      NOT NULL,
    password_hash TEXT      NOT NULL,
    email         TEXT      NOT NULL,
    created_at    TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX ix_user_account_email ON user_account (email);

CREATE TABLE team (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id   BIGINT    NOT NULL REFERENCES user_account (id) ON DELETE CASCADE,
    name       TEXT      NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE user_team (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    team_id    BIGINT    NOT NULL REFERENCES team (id),
    user_id    BIGINT    NOT NULL REFERENCES user_account (id),
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE board (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    team_id    BIGINT    NOT NULL REFERENCES team (id) ON DELETE CASCADE,
    created_by BIGINT    REFERENCES user_account (id) ON DELETE SET NULL,
    name       TEXT      NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE section (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    board_id   BIGINT    NOT NULL REFERENCES board (id) ON DELETE CASCADE,
    name       TEXT      NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE card (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    name         TEXT      NOT NULL,
    description  TEXT      NOT NULL,
    assigned_to  BIGINT    REFERENCES user_account (id) ON DELETE SET NULL,
    section_id   BIGINT    NOT NULL REFERENCES section (id) ON DELETE CASCADE,
    status       INTEGER   NOT NULL,
    created_by   BIGINT    REFERENCES user_account (id) ON DELETE SET NULL,
    completed_at TIMESTAMP,
    created_at   TIMESTAMP NOT NULL
);
`

// NewTestDB opens an isolated in-memory database with the schema applied.
// A single connection keeps the memory database alive for the whole test.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	_, err = db.Exec(schema)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}
