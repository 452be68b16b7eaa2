// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strings"

	"github.com/danielhkuo/idea-board/models"
)

// ListOptions selects and orders an idea listing.
type ListOptions struct {
	Sort   string // models.SortNew or models.SortTop (default)
	Search string // free text, matched against title/author/category
}

const ideaColumns = "id, author, title, problem, solution_hint, category, votes, created_at"

// buildListQuery constructs the listing query. Search text only ever
// travels through placeholders; it is never concatenated into the SQL.
func buildListQuery(opts ListOptions) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT " + ideaColumns + " FROM idea")

	var args []any
	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		b.WriteString(" WHERE LOWER(title) LIKE $1 OR LOWER(author) LIKE $2 OR LOWER(category) LIKE $3")
		args = append(args, pattern, pattern, pattern)
	}

	switch opts.Sort {
	case models.SortNew:
		b.WriteString(" ORDER BY created_at DESC, votes DESC")
	default: // models.SortTop
		b.WriteString(" ORDER BY votes DESC, created_at DESC")
	}

	return b.String(), args
}
