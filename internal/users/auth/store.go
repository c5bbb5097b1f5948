// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Accounts are never deleted; the contract is intentionally create/read only
// (plus verification-time reads during login and token resolution).
type UserRepository interface {

	/*
		Create persists a brand-new user account to the storage.

		The users.account table carries a unique index on email; a duplicate
		surfaces as an [apperr.Conflict], never as a pre-check race.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByEmail returns the account with the given normalized email.

		Parameters:
		  - context: context.Context
		  - email: string (already lowercased and trimmed)

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)
}

// # Session Data Access

// SessionRepository defines the contract for storing volatile refresh-token
// sessions. Entries are keyed by token hash and expire on their own.
type SessionRepository interface {

	/*
		Set stores a refresh-token hash associated with a userID for a limited duration.

		Parameters:
		  - context: context.Context
		  - tokenHash: string
		  - userID: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(context context.Context, tokenHash string, userID string, ttl time.Duration) error

	/*
		Get retrieves the userID associated with a refresh-token hash.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - string: UserID
		  - error: apperr.NotFound if absent or expired, or retrieval failures
	*/
	Get(context context.Context, tokenHash string) (string, error)

	/*
		Delete removes a refresh-token session (logout / rotation).

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, tokenHash string) error
}
