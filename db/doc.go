// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection setup and schema creation.

# Opening a Connection

Open picks the driver from the configured database type ("sqlite" by
default, "postgres" for deployments that want it):

	conn, err := db.Open(cfg)

The sqlite path uses the pure-Go modernc.org/sqlite driver and appends
the pragmas the vote path relies on (foreign_keys, WAL, busy_timeout,
immediate transaction locking).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

  - idea: submitted ideas with a denormalized vote counter
  - vote: append-only ledger, PRIMARY KEY (idea_id, identity)
  - product: auxiliary catalog entries
  - product_update: announcements attached to a product
  - product_comment: public comments attached to a product

# Relationships

	idea 1──* vote
	product 1──* product_update
	product 1──* product_comment

All foreign keys use ON DELETE CASCADE.

Both dialects use $N placeholders: native in lib/pq, and accepted by
sqlite as named parameters that bind positionally when numbered in
order.
*/
package db
