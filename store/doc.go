// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns all database access: the idea store, the vote
ledger, the vote coordinator, and the products catalog.

# Construction

A Store wraps a *sql.DB and is injected into the handlers:

	st := store.New(conn)

# The Vote Path

CastVote is the only writer of the votes counter. It runs ledger insert
and counter increment inside one transaction:

	idea, alreadyVoted, err := st.CastVote(ideaID, identity)

Correctness rests on the vote table's PRIMARY KEY (idea_id, identity),
not on any in-process locking: concurrent attempts for the same pair
resolve to exactly one Inserted outcome, and the increment is an atomic
"votes = votes + 1" at the database, so distinct identities never lose
updates. The counter is a cache of the ledger; the ledger is the truth.

# Listings

ListIdeas takes ListOptions{Sort, Search}. Search is a case-insensitive
substring match over title, author, and category, always parameterized.
"new" orders by creation time (votes as tiebreak); the default "top"
orders by votes (creation time as tiebreak).

# Errors

Absent records surface as ErrNotFound; everything else is a wrapped
driver error. A duplicate vote is not an error.
*/
package store
