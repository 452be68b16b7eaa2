// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/idea-board/models"
)

// InsertIdea persists a new idea, assigning its id and creation time.
// All written fields except votes are write-once; the votes counter is
// mutated only through CastVote.
func (s *Store) InsertIdea(idea *models.Idea) error {
	idea.Votes = 0
	idea.CreatedAt = time.Now().UTC()

	err := s.db.QueryRow(`
		INSERT INTO idea (author, title, problem, solution_hint, category, votes, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING id
	`, idea.Author, idea.Title, idea.Problem, idea.SolutionHint, idea.Category, idea.CreatedAt).Scan(&idea.ID)

	if err != nil {
		return fmt.Errorf("insert idea: %w", err)
	}
	return nil
}

// GetIdea loads a single idea. Returns ErrNotFound if it is absent.
func (s *Store) GetIdea(id int64) (*models.Idea, error) {
	var idea models.Idea
	err := s.db.QueryRow(`
		SELECT `+ideaColumns+` FROM idea WHERE id = $1
	`, id).Scan(
		&idea.ID, &idea.Author, &idea.Title, &idea.Problem,
		&idea.SolutionHint, &idea.Category, &idea.Votes, &idea.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get idea %d: %w", id, err)
	}
	return &idea, nil
}

// ListIdeas returns the full filtered and sorted result set.
func (s *Store) ListIdeas(opts ListOptions) ([]models.Idea, error) {
	query, args := buildListQuery(opts)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(
			&idea.ID, &idea.Author, &idea.Title, &idea.Problem,
			&idea.SolutionHint, &idea.Category, &idea.Votes, &idea.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	return ideas, nil
}

// IncrementVotes adds exactly 1 to an idea's counter as a single atomic
// update at the store. Returns false if the idea does not exist.
func (s *Store) IncrementVotes(id int64) (bool, error) {
	res, err := s.db.Exec(`UPDATE idea SET votes = votes + 1 WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("increment votes for idea %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("increment votes for idea %d: %w", id, err)
	}
	return n > 0, nil
}

// DeleteIdea removes an idea; its ledger rows go with it via cascade.
// Returns false if the idea did not exist.
func (s *Store) DeleteIdea(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM idea WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete idea %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete idea %d: %w", id, err)
	}
	return n > 0, nil
}

// ExportIdeas returns every idea together with its ledger row count,
// ordered by id.
func (s *Store) ExportIdeas() ([]models.ExportedIdea, error) {
	rows, err := s.db.Query(`
		SELECT i.id, i.author, i.title, i.problem, i.solution_hint, i.category, i.votes, i.created_at,
		       COUNT(v.idea_id)
		FROM idea i
		LEFT JOIN vote v ON v.idea_id = i.id
		GROUP BY i.id, i.author, i.title, i.problem, i.solution_hint, i.category, i.votes, i.created_at
		ORDER BY i.id
	`)
	if err != nil {
		return nil, fmt.Errorf("export ideas: %w", err)
	}
	defer rows.Close()

	out := []models.ExportedIdea{}
	for rows.Next() {
		var e models.ExportedIdea
		if err := rows.Scan(
			&e.ID, &e.Author, &e.Title, &e.Problem,
			&e.SolutionHint, &e.Category, &e.Votes, &e.CreatedAt,
			&e.LedgerVotes,
		); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export ideas: %w", err)
	}
	return out, nil
}
