// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/idea-board/auth"
	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

const maxUploadBytes = 8 << 20

type ProductHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	validate *validator.Validate
}

func NewProductHandler(st *store.Store, cfg cliparse.Config) *ProductHandler {
	return &ProductHandler{store: st, cfg: cfg, validate: newValidator()}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts()
	if err != nil {
		slog.Error("failed to list products", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
// Returns the product with its updates and comments.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.store.GetProduct(productID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("failed to get product", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	updates, err := h.store.ListProductUpdates(productID)
	if err != nil {
		slog.Error("failed to list product updates", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	comments, err := h.store.ListProductComments(productID)
	if err != nil {
		slog.Error("failed to list product comments", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProductDetail{
		Product:  *product,
		Updates:  updates,
		Comments: comments,
	})
}

// CreateProduct handles POST /admin/products
// Accepts a multipart form with name, description, and an optional
// image file. The image is stored under the upload dir with a fresh
// uuid name; no processing is done on it.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminKey) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(name) > 120 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at most 120 characters")
		return
	}
	if len(description) > 2000 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description must be at most 2000 characters")
		return
	}

	imagePath, err := h.saveImage(r)
	if err != nil {
		slog.Error("failed to save product image", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		ImagePath:   imagePath,
	}

	if err := h.store.InsertProduct(product); err != nil {
		slog.Error("failed to insert product", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	slog.Info("product created", "product_id", product.ID)

	middleware.JSONResponse(w, http.StatusCreated, product)
}

// saveImage stores the optional "image" form file and returns its
// served path, or "" when no file was sent.
func (h *ProductHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	name := auth.UploadName(header.Filename)
	dst, err := os.Create(filepath.Join(h.cfg.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// AddUpdate handles POST /admin/products/{id}/updates
func (h *ProductHandler) AddUpdate(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminKey) {
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req models.AddUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Body = strings.TrimSpace(req.Body)
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	update := &models.ProductUpdate{ProductID: productID, Body: req.Body}
	err = h.store.InsertProductUpdate(update)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert product update", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add update")
		return
	}

	slog.Info("product update added", "product_id", productID, "update_id", update.ID)

	middleware.JSONResponse(w, http.StatusCreated, update)
}

// AddComment handles POST /products/{id}/comments
func (h *ProductHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Author = strings.TrimSpace(req.Author)
	req.Body = strings.TrimSpace(req.Body)
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	comment := &models.ProductComment{ProductID: productID, Author: req.Author, Body: req.Body}
	err = h.store.InsertProductComment(comment)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert product comment", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	slog.Info("product comment added", "product_id", productID, "comment_id", comment.ID)

	middleware.JSONResponse(w, http.StatusCreated, comment)
}

// DeleteProduct handles DELETE /admin/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminKey) {
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.store.GetProduct(productID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("failed to get product", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if _, err := h.store.DeleteProduct(productID); err != nil {
		slog.Error("failed to delete product", "error", err, "product_id", productID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	// Best-effort cleanup of the stored image
	if product.ImagePath != "" {
		name := strings.TrimPrefix(product.ImagePath, "/uploads/")
		if err := os.Remove(filepath.Join(h.cfg.UploadDir, name)); err != nil {
			slog.Warn("failed to remove product image", "error", err, "product_id", productID)
		}
	}

	slog.Info("product deleted", "product_id", productID)

	w.WriteHeader(http.StatusNoContent)
}
