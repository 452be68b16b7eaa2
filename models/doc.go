// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by
the idea-board API.

Domain types (Idea, Vote, Product, ProductUpdate, ProductComment) mirror
the database schema in package db. Request types carry validator tags that
encode the creation limits:

  - title: required, max 160
  - problem: required, max 1000
  - solution_hint: required, max 600

Vote.Identity is never serialized; the voter identity string may contain
a raw network address and must not leave the server.
*/
package models
