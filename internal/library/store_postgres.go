// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package library

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvhoang/cinelog/internal/platform/apperr"
	"github.com/nvhoang/cinelog/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
//
// One repository serves both list kinds; the kind column is part of every
// predicate, so watchlist and watched entries never bleed into each other.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new entry into the library.entry table.

Description: The compound unique key (userid, kind, movieid) is the
duplicate check — no lookup-then-insert, so two concurrent adds for the
same (owner, movie) pair cannot both succeed.

Parameters:
  - context: context.Context
  - entry: *Entry

Returns:
  - error: apperr.Conflict for a duplicate, or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, entry *Entry) error {
	const query = `
		INSERT INTO library.entry (
			id, userid, kind, movieid, title, posterpath, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		entry.ID,
		entry.UserID,
		entry.Kind,
		entry.MovieID,
		entry.Title,
		entry.PosterPath,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Movie already in " + entry.Kind.Label())
		}
		return fmt.Errorf("postgres_library_repo_create_failed: %w", err)
	}

	return nil
}

/*
ListByOwner returns all entries of one kind for one owner.

Parameters:
  - context: context.Context
  - ownerID: string
  - kind: ListKind

Returns:
  - []*Entry: Hydrated entities
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string, kind ListKind) ([]*Entry, error) {
	const query = `
		SELECT id, userid, kind, movieid, title, posterpath, createdat, updatedat
		FROM library.entry
		WHERE userid = $1 AND kind = $2`

	rows, err := repository.pool.Query(context, query, ownerID, kind)
	if err != nil {
		return nil, dberr.Wrap(err, "List entries")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Kind,
			&entry.MovieID,
			&entry.Title,
			&entry.PosterPath,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_library_repo_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_library_repo_rows_failed: %w", err)
	}

	return entries, nil
}

/*
DeleteByOwnerAndMovie removes one entry scoped to its owner.

Description: The owner filter is part of the DELETE predicate itself, so a
caller can never delete another user's entry — the statement simply matches
zero rows.

Parameters:
  - context: context.Context
  - ownerID: string
  - kind: ListKind
  - movieID: int64

Returns:
  - bool: Whether a row was deleted
  - error: Execution errors
*/
func (repository *PostgresRepository) DeleteByOwnerAndMovie(context context.Context, ownerID string, kind ListKind, movieID int64) (bool, error) {
	const query = `
		DELETE FROM library.entry
		WHERE userid = $1 AND kind = $2 AND movieid = $3`

	tag, err := repository.pool.Exec(context, query, ownerID, kind, movieID)
	if err != nil {
		return false, fmt.Errorf("postgres_library_repo_delete_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
