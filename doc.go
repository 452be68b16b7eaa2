// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the idea-board API server.

Idea-board is a small public idea-submission board: visitors submit
ideas, browse and search them, and cast one counted vote per idea.
Administrators moderate (delete, export) and maintain an auxiliary
products catalog.

# Starting the Server

The server reads configuration from env variables (a .env file works in
dev) or CLI flags:

	ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3411 -t sqlite -d idea-board.db -admin-key secret

# Configuration

Required settings:

  - ADMIN_KEY (-admin-key): key for moderation endpoints

Optional settings:

  - PORT (-p): server port (default: 3411)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): sqlite path (default: idea-board.db) or
    postgres connection string
  - UPLOAD_DIR (-uploads): product image dir (default: uploads)

# Architecture

Handler-based architecture with constructor injection:

  - identity: voter identity resolution (token, else IP + user agent)
  - store: idea store, vote ledger, vote coordinator, products
  - handlers: HTTP request handlers (ideas, admin, products)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response/domain types
  - auth: admin key validation, upload naming
  - db: connection setup and schema creation
  - cliparse: configuration parsing

The one-vote-per-identity invariant lives in the database schema (the
vote table's composite primary key); see the store package.
*/
package main
