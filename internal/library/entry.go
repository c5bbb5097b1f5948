// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

/*
Package library implements the per-user movie lists (watchlist and watched).

Both lists share one schema and one code path: an Entry associates an owner
with an external catalog movie id and a denormalized title/poster snapshot.
The list kind is a parameter, not a copy of the CRUD logic.

# Ownership

Every operation takes the owner id resolved by the auth middleware as a
mandatory filter. Cross-owner reads and deletes are impossible by
construction; there is no code path that omits the owner predicate.
*/
package library

import "time"

// ListKind discriminates the two per-user movie lists.
type ListKind string

const (
	// KindWatchlist holds movies the user intends to watch.
	KindWatchlist ListKind = "watchlist"

	// KindWatched holds movies the user has already seen.
	KindWatched ListKind = "watched"
)

// Label returns the human-readable list name used in client-facing messages.
func (k ListKind) Label() string {
	if k == KindWatched {
		return "watched list"
	}
	return "watch list"
}

// Entry represents one movie on one user's list.
//
// Title and PosterPath are a snapshot of catalog data taken when the entry
// was created; they are not kept in sync if the catalog changes. MovieID is
// an external identifier from the third-party catalog, not a foreign key
// into any local table.
type Entry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Kind       ListKind  `json:"-"`
	MovieID    int64     `json:"movieId"`
	Title      string    `json:"title"`
	PosterPath string    `json:"posterPath,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// # Field Identifiers

const (
	FieldMovieID    = "movieId"
	FieldTitle      = "title"
	FieldPosterPath = "posterPath"
)
