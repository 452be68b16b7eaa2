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

func (s *Store) InsertProduct(p *models.Product) error {
	p.CreatedAt = time.Now().UTC()

	err := s.db.QueryRow(`
		INSERT INTO product (name, description, image_path, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.Name, p.Description, p.ImagePath, p.CreatedAt).Scan(&p.ID)

	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (s *Store) GetProduct(id int64) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRow(`
		SELECT id, name, description, image_path, created_at
		FROM product WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.ImagePath, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

func (s *Store) ListProducts() ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, image_path, created_at
		FROM product ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImagePath, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product; updates and comments cascade.
func (s *Store) DeleteProduct(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}
	return n > 0, nil
}

// InsertProductUpdate attaches an update to an existing product.
// Returns ErrNotFound if the product is absent.
func (s *Store) InsertProductUpdate(u *models.ProductUpdate) error {
	if err := s.checkProductExists(u.ProductID); err != nil {
		return err
	}

	u.CreatedAt = time.Now().UTC()
	err := s.db.QueryRow(`
		INSERT INTO product_update (product_id, body, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.ProductID, u.Body, u.CreatedAt).Scan(&u.ID)

	if err != nil {
		return fmt.Errorf("insert product update: %w", err)
	}
	return nil
}

func (s *Store) ListProductUpdates(productID int64) ([]models.ProductUpdate, error) {
	rows, err := s.db.Query(`
		SELECT id, product_id, body, created_at
		FROM product_update WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("list updates for product %d: %w", productID, err)
	}
	defer rows.Close()

	updates := []models.ProductUpdate{}
	for rows.Next() {
		var u models.ProductUpdate
		if err := rows.Scan(&u.ID, &u.ProductID, &u.Body, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product update: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list updates for product %d: %w", productID, err)
	}
	return updates, nil
}

// InsertProductComment attaches a comment to an existing product.
// Returns ErrNotFound if the product is absent.
func (s *Store) InsertProductComment(c *models.ProductComment) error {
	if err := s.checkProductExists(c.ProductID); err != nil {
		return err
	}

	c.CreatedAt = time.Now().UTC()
	err := s.db.QueryRow(`
		INSERT INTO product_comment (product_id, author, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.ProductID, c.Author, c.Body, c.CreatedAt).Scan(&c.ID)

	if err != nil {
		return fmt.Errorf("insert product comment: %w", err)
	}
	return nil
}

func (s *Store) ListProductComments(productID int64) ([]models.ProductComment, error) {
	rows, err := s.db.Query(`
		SELECT id, product_id, author, body, created_at
		FROM product_comment WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("list comments for product %d: %w", productID, err)
	}
	defer rows.Close()

	comments := []models.ProductComment{}
	for rows.Next() {
		var c models.ProductComment
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments for product %d: %w", productID, err)
	}
	return comments, nil
}

func (s *Store) checkProductExists(id int64) error {
	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM product WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check product %d: %w", id, err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
