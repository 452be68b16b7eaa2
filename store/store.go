// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when the targeted record does not exist.
var ErrNotFound = errors.New("record not found")

// Store owns all reads and writes against the database. It is
// constructed once at startup and injected into the handlers; nothing
// else touches the connection.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
