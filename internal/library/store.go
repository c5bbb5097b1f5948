// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package library

import "context"

// Repository defines the data access contract for list entries.
//
// All methods that read or mutate existing rows require the owner id; the
// storage layer never exposes an unscoped variant.
type Repository interface {

	/*
		Create persists a new list entry.

		The library.entry table carries a compound unique key on
		(userid, kind, movieid); a concurrent duplicate add loses at the
		constraint and surfaces as an [apperr.Conflict].

		Parameters:
		  - context: context.Context
		  - entry: *Entry

		Returns:
		  - error: apperr.Conflict on duplicate, or persistence failures
	*/
	Create(context context.Context, entry *Entry) error

	/*
		ListByOwner returns every entry of one kind owned by the caller.

		Order is store-native and not guaranteed.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - kind: ListKind

		Returns:
		  - []*Entry: Hydrated entities (possibly empty, never nil)
		  - error: Retrieval failures
	*/
	ListByOwner(context context.Context, ownerID string, kind ListKind) ([]*Entry, error)

	/*
		DeleteByOwnerAndMovie removes exactly one entry matching the owner,
		kind, and external movie id.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - kind: ListKind
		  - movieID: int64

		Returns:
		  - bool: Whether a row was actually deleted
		  - error: Persistence failures
	*/
	DeleteByOwnerAndMovie(context context.Context, ownerID string, kind ListKind, movieID int64) (bool, error)
}
