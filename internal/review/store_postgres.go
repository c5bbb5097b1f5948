// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvhoang/cinelog/internal/platform/apperr"
	"github.com/nvhoang/cinelog/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new review into the library.review table.

Description: The compound unique key (userid, movieid) enforces one review
per movie per user at the storage layer.

Parameters:
  - context: context.Context
  - review: *Review

Returns:
  - error: apperr.Conflict for a duplicate, or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, review *Review) error {
	const query = `
		INSERT INTO library.review (
			id, userid, movieid, rating, comment, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("You have already reviewed this movie")
		}
		return fmt.Errorf("postgres_review_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves one review joined with its reviewer's display name.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Review: Hydrated, enriched entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Review, error) {
	const query = `
		SELECT r.id, r.userid, r.movieid, r.rating, r.comment, r.createdat, r.updatedat, a.name
		FROM library.review r
		JOIN users.account a ON r.userid = a.id
		WHERE r.id = $1`

	review := &Review{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.ReviewerName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Review")
		}
		return nil, fmt.Errorf("postgres_review_repo_find_by_id_failed: %w", err)
	}

	return review, nil
}

/*
FindByIDForOwner retrieves one review only if the caller owns it.

Description: The owner predicate is mandatory; a review owned by someone
else is indistinguishable from a missing one.

Parameters:
  - context: context.Context
  - ownerID: string
  - id: string

Returns:
  - *Review: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByIDForOwner(context context.Context, ownerID string, id string) (*Review, error) {
	const query = `
		SELECT id, userid, movieid, rating, comment, createdat, updatedat
		FROM library.review
		WHERE id = $1 AND userid = $2`

	review := &Review{}
	err := repository.pool.QueryRow(context, query, id, ownerID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Review")
		}
		return nil, fmt.Errorf("postgres_review_repo_find_for_owner_failed: %w", err)
	}

	return review, nil
}

/*
ListByOwner returns all reviews written by one owner.

Parameters:
  - context: context.Context
  - ownerID: string

Returns:
  - []*Review: Hydrated entities
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string) ([]*Review, error) {
	const query = `
		SELECT id, userid, movieid, rating, comment, createdat, updatedat
		FROM library.review
		WHERE userid = $1`

	rows, err := repository.pool.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "List reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		review := &Review{}
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_review_repo_scan_failed: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_review_repo_rows_failed: %w", err)
	}

	return reviews, nil
}

/*
ListByMovie returns all reviews for one movie across all owners, enriched.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - []*Review: Hydrated, enriched entities
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListByMovie(context context.Context, movieID int64) ([]*Review, error) {
	const query = `
		SELECT r.id, r.userid, r.movieid, r.rating, r.comment, r.createdat, r.updatedat, a.name
		FROM library.review r
		JOIN users.account a ON r.userid = a.id
		WHERE r.movieid = $1`

	rows, err := repository.pool.Query(context, query, movieID)
	if err != nil {
		return nil, dberr.Wrap(err, "List reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		review := &Review{}
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.ReviewerName,
		); err != nil {
			return nil, fmt.Errorf("postgres_review_repo_scan_failed: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_review_repo_rows_failed: %w", err)
	}

	return reviews, nil
}

/*
Update persists the mutable fields of a review.

Description: Only rating and comment are mutable after creation; identity
and movie binding are frozen.

Parameters:
  - context: context.Context
  - review: *Review

Returns:
  - error: Update failures
*/
func (repository *PostgresRepository) Update(context context.Context, review *Review) error {
	const query = `
		UPDATE library.review
		SET rating = $2, comment = $3, updatedat = $4
		WHERE id = $1`

	review.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_review_repo_update_failed: %w", err)
	}

	return nil
}

/*
DeleteByOwnerAndID removes one review scoped to its owner.

Parameters:
  - context: context.Context
  - ownerID: string
  - id: string

Returns:
  - bool: Whether a row was deleted
  - error: Execution errors
*/
func (repository *PostgresRepository) DeleteByOwnerAndID(context context.Context, ownerID string, id string) (bool, error) {
	const query = `
		DELETE FROM library.review
		WHERE id = $1 AND userid = $2`

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("postgres_review_repo_delete_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
