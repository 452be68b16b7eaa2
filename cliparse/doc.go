// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallbacks.

Precedence: CLI flag, then env variable, then default. ADMIN_KEY has no
default and must be provided.
*/
package cliparse
