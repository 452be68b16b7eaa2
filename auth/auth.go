// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the provided key against the configured one.
// Constant-time compare; an empty configured key never validates.
func ValidateAdminKey(provided, configured string) error {
	if configured == "" || !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// UploadName returns a collision-free filename for an uploaded file,
// keeping the original extension. The client-supplied name itself is
// never used on disk.
func UploadName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}
