// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/handlers"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ideaHandler := handlers.NewIdeaHandler(st)
	adminHandler := handlers.NewAdminHandler(st, cfg)
	productHandler := handlers.NewProductHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Ideas (public)
	mux.HandleFunc("GET /ideas", middleware.WithLogging(ideaHandler.ListIdeas))
	mux.HandleFunc("POST /ideas", middleware.WithLogging(ideaHandler.CreateIdea))
	mux.HandleFunc("POST /ideas/{id}/vote", middleware.WithLogging(ideaHandler.Vote))

	// Products catalog (public reads, public comments)
	mux.HandleFunc("GET /products", middleware.WithLogging(productHandler.ListProducts))
	mux.HandleFunc("GET /products/{id}", middleware.WithLogging(productHandler.GetProduct))
	mux.HandleFunc("POST /products/{id}/comments", middleware.WithLogging(productHandler.AddComment))

	// Moderation (X-Admin-Key gated)
	mux.HandleFunc("DELETE /admin/ideas/{id}", middleware.WithLogging(adminHandler.DeleteIdea))
	mux.HandleFunc("GET /admin/export", middleware.WithLogging(adminHandler.ExportIdeas))
	mux.HandleFunc("POST /admin/products", middleware.WithLogging(productHandler.CreateProduct))
	mux.HandleFunc("POST /admin/products/{id}/updates", middleware.WithLogging(productHandler.AddUpdate))
	mux.HandleFunc("DELETE /admin/products/{id}", middleware.WithLogging(productHandler.DeleteProduct))

	// Uploaded product images
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("idea-board API v1"))
	})

	return mux
}
