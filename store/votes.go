// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/idea-board/models"
)

// InsertOutcome is the result of a ledger insert attempt.
type InsertOutcome int

const (
	Inserted InsertOutcome = iota
	AlreadyExists
)

// recordVote attempts the ledger insert for (ideaID, identity) inside
// tx. The composite primary key on vote is the single arbitration
// point: under concurrent attempts for the same pair, exactly one
// insert lands and the rest report AlreadyExists via RowsAffected. No
// error-string inspection is involved.
func recordVote(tx *sql.Tx, ideaID int64, identity string) (InsertOutcome, error) {
	res, err := tx.Exec(`
		INSERT INTO vote (idea_id, identity, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (idea_id, identity) DO NOTHING
	`, ideaID, identity, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert vote for idea %d: %w", ideaID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("insert vote for idea %d: %w", ideaID, err)
	}
	if n == 0 {
		return AlreadyExists, nil
	}
	return Inserted, nil
}

// CastVote arbitrates one vote attempt: ledger insert, then counter
// increment, in a single transaction so a crash can never leave a
// ledger row without its increment.
//
// Returns the idea as it stands after the attempt, plus alreadyVoted.
// A repeat attempt from the same identity is a success with
// alreadyVoted=true and an untouched counter, never an error. A missing
// idea returns ErrNotFound.
func (s *Store) CastVote(ideaID int64, identity string) (*models.Idea, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, false, fmt.Errorf("begin vote tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM idea WHERE id = $1)`, ideaID).Scan(&exists); err != nil {
		return nil, false, fmt.Errorf("check idea %d: %w", ideaID, err)
	}
	if !exists {
		return nil, false, ErrNotFound
	}

	outcome, err := recordVote(tx, ideaID, identity)
	if err != nil {
		return nil, false, err
	}

	if outcome == AlreadyExists {
		// Nothing to write; release the lock before reloading.
		tx.Rollback()
		idea, err := s.GetIdea(ideaID)
		if err != nil {
			return nil, false, err
		}
		return idea, true, nil
	}

	// Atomic add at the store, not read-modify-write in Go, so
	// concurrent votes from distinct identities all land.
	res, err := tx.Exec(`UPDATE idea SET votes = votes + 1 WHERE id = $1`, ideaID)
	if err != nil {
		return nil, false, fmt.Errorf("increment votes for idea %d: %w", ideaID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("increment votes for idea %d: %w", ideaID, err)
	}
	if n == 0 {
		// Idea vanished between check and increment; roll the
		// ledger row back with the tx.
		return nil, false, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit vote for idea %d: %w", ideaID, err)
	}

	idea, err := s.GetIdea(ideaID)
	if err != nil {
		return nil, false, err
	}
	return idea, false, nil
}

// CountVotes returns the number of ledger rows for an idea.
func (s *Store) CountVotes(ideaID int64) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM vote WHERE idea_id = $1`, ideaID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count votes for idea %d: %w", ideaID, err)
	}
	return n, nil
}
