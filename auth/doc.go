// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the admin gate and upload naming helpers.

Admin operations send the configured key in the X-Admin-Key header:

	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey); err != nil {
		// 401
	}

UploadName generates uuid-based filenames for stored images so
client-supplied names never touch the filesystem.
*/
package auth
