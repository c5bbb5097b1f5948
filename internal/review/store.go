// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package review

import "context"

// Repository defines the data access contract for reviews.
type Repository interface {

	/*
		Create persists a new review.

		The library.review table carries a compound unique key on
		(userid, movieid); a second review for the same movie by the same
		user surfaces as an [apperr.Conflict].

		Parameters:
		  - context: context.Context
		  - review: *Review

		Returns:
		  - error: apperr.Conflict on duplicate, or persistence failures
	*/
	Create(context context.Context, review *Review) error

	/*
		FindByID returns one review enriched with its reviewer's name.

		Used after create/update to return the canonical enriched view.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Review: Hydrated, enriched entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Review, error)

	/*
		FindByIDForOwner returns one review only if it belongs to ownerID.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - id: string

		Returns:
		  - *Review: Hydrated entity (not enriched)
		  - error: apperr.NotFound when absent or owned by someone else
	*/
	FindByIDForOwner(context context.Context, ownerID string, id string) (*Review, error)

	/*
		ListByOwner returns every review written by the caller.

		Order is store-native and not guaranteed.

		Parameters:
		  - context: context.Context
		  - ownerID: string

		Returns:
		  - []*Review: Hydrated entities (possibly empty, never nil)
		  - error: Retrieval failures
	*/
	ListByOwner(context context.Context, ownerID string) ([]*Review, error)

	/*
		ListByMovie returns every review for one movie across all owners,
		each enriched with its reviewer's name. This is the only
		multi-owner read path and is intentionally not owner-scoped.

		Parameters:
		  - context: context.Context
		  - movieID: int64

		Returns:
		  - []*Review: Hydrated, enriched entities
		  - error: Retrieval failures
	*/
	ListByMovie(context context.Context, movieID int64) ([]*Review, error)

	/*
		Update persists the mutable fields (rating, comment) of a review.

		Parameters:
		  - context: context.Context
		  - review: *Review

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, review *Review) error

	/*
		DeleteByOwnerAndID removes one review scoped to its owner.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - id: string

		Returns:
		  - bool: Whether a row was actually deleted
		  - error: Persistence failures
	*/
	DeleteByOwnerAndID(context context.Context, ownerID string, id string) (bool, error)
}
