// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"
	"strings"
)

// TokenHeader carries the opaque voter token, when the client has one.
const TokenHeader = "X-Voter-Token"

// FromRequest derives the voter identity string for a request.
//
// A non-empty token header wins and is used verbatim after trimming.
// Otherwise the identity falls back to "clientIP|userAgent". The
// fallback can be low-entropy (the degenerate "|" when both parts are
// empty); that weakness is accepted - the fallback only needs to be
// deterministic per client, and the ledger treats whatever comes out of
// here as the identity.
func FromRequest(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(TokenHeader)); token != "" {
		return token
	}
	return ClientIP(r) + "|" + r.UserAgent()
}

// ClientIP extracts the client IP address.
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For (load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take first IP in chain
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' || xff[i] == ' ' {
				return xff[:i]
			}
		}
		return xff
	}

	// Check X-Real-IP (nginx)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to RemoteAddr
	// Strip port if present
	addr := r.RemoteAddr
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
	}
	return addr
}
