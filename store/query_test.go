// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/idea-board/models"
)

func TestBuildListQuery_DefaultSort(t *testing.T) {
	query, args := buildListQuery(ListOptions{})

	assert.Contains(t, query, "ORDER BY votes DESC, created_at DESC")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuery_TopSort(t *testing.T) {
	query, _ := buildListQuery(ListOptions{Sort: models.SortTop})

	assert.Contains(t, query, "ORDER BY votes DESC, created_at DESC")
}

func TestBuildListQuery_NewSort(t *testing.T) {
	query, _ := buildListQuery(ListOptions{Sort: models.SortNew})

	assert.Contains(t, query, "ORDER BY created_at DESC, votes DESC")
}

func TestBuildListQuery_UnknownSortFallsBackToTop(t *testing.T) {
	query, _ := buildListQuery(ListOptions{Sort: "sideways"})

	assert.Contains(t, query, "ORDER BY votes DESC, created_at DESC")
}

func TestBuildListQuery_Search(t *testing.T) {
	query, args := buildListQuery(ListOptions{Search: "Solar"})

	assert.Contains(t, query, "LOWER(title) LIKE $1")
	assert.Contains(t, query, "LOWER(author) LIKE $2")
	assert.Contains(t, query, "LOWER(category) LIKE $3")
	assert.Equal(t, []any{"%solar%", "%solar%", "%solar%"}, args)
}

func TestBuildListQuery_SearchTextNeverInSQL(t *testing.T) {
	// The search text must only travel via placeholders
	hostile := "'; DROP TABLE idea; --"
	query, args := buildListQuery(ListOptions{Search: hostile})

	assert.NotContains(t, query, "DROP TABLE")
	assert.Len(t, args, 3)
	assert.Equal(t, "%'; drop table idea; --%", args[0])
}
