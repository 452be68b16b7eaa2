// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/idea-board/identity"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

type IdeaHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewIdeaHandler(st *store.Store) *IdeaHandler {
	return &IdeaHandler{store: st, validate: newValidator()}
}

// ListIdeas handles GET /ideas?sort=&search=
func (h *IdeaHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	opts := store.ListOptions{
		Sort:   r.URL.Query().Get("sort"),
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}

	ideas, err := h.store.ListIdeas(opts)
	if err != nil {
		slog.Error("failed to list ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ideas)
}

// CreateIdea handles POST /ideas
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Required-ness is judged after trimming
	req.Author = strings.TrimSpace(req.Author)
	req.Title = strings.TrimSpace(req.Title)
	req.Problem = strings.TrimSpace(req.Problem)
	req.SolutionHint = strings.TrimSpace(req.SolutionHint)
	req.Category = strings.TrimSpace(req.Category)

	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	idea := &models.Idea{
		Author:       req.Author,
		Title:        req.Title,
		Problem:      req.Problem,
		SolutionHint: req.SolutionHint,
		Category:     req.Category,
	}

	if err := h.store.InsertIdea(idea); err != nil {
		slog.Error("failed to insert idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	slog.Info("idea created", "idea_id", idea.ID)

	middleware.JSONResponse(w, http.StatusCreated, idea)
}

// Vote handles POST /ideas/{id}/vote
func (h *IdeaHandler) Vote(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid idea id")
		return
	}

	voter := identity.FromRequest(r)

	idea, alreadyVoted, err := h.store.CastVote(ideaID, voter)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "idea_id", ideaID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote processed", "idea_id", ideaID, "already_voted", alreadyVoted)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Idea:         *idea,
		AlreadyVoted: alreadyVoted,
	})
}
