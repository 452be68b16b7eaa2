// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Sort order constants for idea listings
const (
	SortTop = "top"
	SortNew = "new"
)

// Request types

type CreateIdeaRequest struct {
	Author       string `json:"author" validate:"omitempty,max=80"`
	Title        string `json:"title" validate:"required,max=160"`
	Problem      string `json:"problem" validate:"required,max=1000"`
	SolutionHint string `json:"solution_hint" validate:"required,max=600"`
	Category     string `json:"category" validate:"omitempty,max=80"`
}

type AddCommentRequest struct {
	Author string `json:"author" validate:"omitempty,max=80"`
	Body   string `json:"body" validate:"required,max=1000"`
}

type AddUpdateRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// Response types

type VoteResponse struct {
	Idea         Idea `json:"idea"`
	AlreadyVoted bool `json:"already_voted"`
}

type ExportResponse struct {
	ExportedAt time.Time      `json:"exported_at"`
	Ideas      []ExportedIdea `json:"ideas"`
}

// Domain types

type Idea struct {
	ID           int64     `json:"id"`
	Author       string    `json:"author,omitempty"`
	Title        string    `json:"title"`
	Problem      string    `json:"problem"`
	SolutionHint string    `json:"solution_hint"`
	Category     string    `json:"category,omitempty"`
	Votes        int       `json:"votes"`
	CreatedAt    time.Time `json:"created_at"`
}

type Vote struct {
	IdeaID    int64     `json:"idea_id"`
	Identity  string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// ExportedIdea pairs an idea with the number of ledger rows backing its
// counter, so moderators can spot drift between the two.
type ExportedIdea struct {
	Idea
	LedgerVotes int `json:"ledger_votes"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductUpdate struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductComment struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Author    string    `json:"author,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductDetail struct {
	Product  Product          `json:"product"`
	Updates  []ProductUpdate  `json:"updates"`
	Comments []ProductComment `json:"comments"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
