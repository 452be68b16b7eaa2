// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity resolves the "who is voting" string for a request.

Clients that hold an X-Voter-Token send it and get a stable identity
regardless of network. Everyone else is identified by clientIP|userAgent,
which is deliberately weak (shared NATs collapse to one identity) but
deterministic. The resolver never fails; it always produces a string.
*/
package identity
