// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the idea-board API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - IdeaHandler: idea listing, submission, and voting
  - AdminHandler: moderation (delete, export), gated by X-Admin-Key
  - ProductHandler: products catalog with updates and comments

Handlers receive the shared *store.Store (and Config where needed):

	ideaHandler := handlers.NewIdeaHandler(st)

# Voting Flow

	POST /ideas/{id}/vote

The voter identity comes from the identity package (token header, else
IP and user agent). The handler delegates arbitration to
store.CastVote; a repeat vote is a 200 with already_voted=true, not an
error. 404 means the idea is gone, 400 means the id was malformed.

# Idea Submission

	POST /ideas

Fields are trimmed, then checked against the validator tags on
models.CreateIdeaRequest (title 160, problem 1000, solution_hint 600).
Failures come back as 400 with a field-by-field message.

# Admin Operations

Admin endpoints require the X-Admin-Key header:

	DELETE /admin/ideas/{id}
	GET    /admin/export?format=json|csv
	POST   /admin/products
	POST   /admin/products/{id}/updates
	DELETE /admin/products/{id}
*/
package handlers
