// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/idea-board/auth"
	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

// requireAdmin gates a request on the X-Admin-Key header. Writes the
// 401 itself so callers can just return on false.
func requireAdmin(w http.ResponseWriter, r *http.Request, configured string) bool {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), configured); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// DeleteIdea handles DELETE /admin/ideas/{id}
func (h *AdminHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminKey) {
		return
	}

	ideaID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid idea id")
		return
	}

	deleted, err := h.store.DeleteIdea(ideaID)
	if err != nil {
		slog.Error("failed to delete idea", "error", err, "idea_id", ideaID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete idea")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}

	slog.Info("idea deleted", "idea_id", ideaID)

	w.WriteHeader(http.StatusNoContent)
}

// ExportIdeas handles GET /admin/export?format=json|csv
func (h *AdminHandler) ExportIdeas(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminKey) {
		return
	}

	ideas, err := h.store.ExportIdeas()
	if err != nil {
		slog.Error("failed to export ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export ideas")
		return
	}

	slog.Info("ideas exported", "count", len(ideas), "format", r.URL.Query().Get("format"))

	if r.URL.Query().Get("format") == "csv" {
		writeExportCSV(w, ideas)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ExportResponse{
		ExportedAt: time.Now().UTC(),
		Ideas:      ideas,
	})
}

func writeExportCSV(w http.ResponseWriter, ideas []models.ExportedIdea) {
	filename := "ideas-export-" + time.Now().UTC().Format("20060102-150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "author", "title", "problem", "solution_hint", "category", "votes", "ledger_votes", "created_at"})
	for _, idea := range ideas {
		cw.Write([]string{
			strconv.FormatInt(idea.ID, 10),
			idea.Author,
			idea.Title,
			idea.Problem,
			idea.SolutionHint,
			idea.Category,
			strconv.Itoa(idea.Votes),
			strconv.Itoa(idea.LedgerVotes),
			idea.CreatedAt.Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err)
	}
}
