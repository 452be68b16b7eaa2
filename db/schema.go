// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/idea-board/cliparse"
)

// Open connects to the configured database. For sqlite the DSN is
// extended with the pragmas the vote path depends on: foreign keys on,
// WAL so readers don't block behind the vote transaction, a busy
// timeout so concurrent writers queue instead of failing, and immediate
// transaction locking so the vote transaction acquires its write lock
// at Begin rather than failing a mid-transaction lock upgrade.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		dsn := cfg.DatabaseURL
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		if strings.Contains(dsn, "?") {
			dsn += "&"
		} else {
			dsn += "?"
		}
		dsn += "_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate"
		return sql.Open("sqlite", dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == "postgres" {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The vote table's composite primary key is the arbitration point for
// the one-vote-per-identity invariant; everything else in the vote path
// assumes the database rejects the second insert for a pair.
const sqliteSchema = `
-- Ideas
CREATE TABLE IF NOT EXISTS idea (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    author TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    problem TEXT NOT NULL,
    solution_hint TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_idea_votes ON idea(votes);

-- Vote ledger: append-only, one row per (idea, identity)
CREATE TABLE IF NOT EXISTS vote (
    idea_id INTEGER NOT NULL REFERENCES idea(id) ON DELETE CASCADE,
    identity TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (idea_id, identity)
);

CREATE INDEX IF NOT EXISTS idx_vote_idea_id ON vote(idea_id);

-- Products
CREATE TABLE IF NOT EXISTS product (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_path TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS product_update (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL REFERENCES product(id) ON DELETE CASCADE,
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_product_update_product_id ON product_update(product_id);

CREATE TABLE IF NOT EXISTS product_comment (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL REFERENCES product(id) ON DELETE CASCADE,
    author TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_product_comment_product_id ON product_comment(product_id);
`

const postgresSchema = `
-- Ideas
CREATE TABLE IF NOT EXISTS idea (
    id BIGSERIAL PRIMARY KEY,
    author TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    problem TEXT NOT NULL,
    solution_hint TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_idea_votes ON idea(votes);

-- Vote ledger: append-only, one row per (idea, identity)
CREATE TABLE IF NOT EXISTS vote (
    idea_id BIGINT NOT NULL REFERENCES idea(id) ON DELETE CASCADE,
    identity TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (idea_id, identity)
);

CREATE INDEX IF NOT EXISTS idx_vote_idea_id ON vote(idea_id);

-- Products
CREATE TABLE IF NOT EXISTS product (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_path TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS product_update (
    id BIGSERIAL PRIMARY KEY,
    product_id BIGINT NOT NULL REFERENCES product(id) ON DELETE CASCADE,
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_product_update_product_id ON product_update(product_id);

CREATE TABLE IF NOT EXISTS product_comment (
    id BIGSERIAL PRIMARY KEY,
    product_id BIGINT NOT NULL REFERENCES product(id) ON DELETE CASCADE,
    author TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_product_comment_product_id ON product_comment(product_id);
`
