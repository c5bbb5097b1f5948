// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package library

import (
	"context"
	"log/slog"

	"github.com/nvhoang/cinelog/internal/platform/apperr"
	"github.com/nvhoang/cinelog/pkg/uuidv7"
)

// Service implements the ownership-scoped list use cases for one kind.
//
// Two instances exist at wiring time — one bound to [KindWatchlist], one to
// [KindWatched] — sharing the same repository and code path.
type Service struct {
	repo   Repository
	kind   ListKind
	logger *slog.Logger
}

// NewService constructs a [Service] bound to a single list kind.
func NewService(repo Repository, kind ListKind, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		kind:   kind,
		logger: logger,
	}
}

// AddInput holds the payload for adding a movie to a list.
type AddInput struct {
	MovieID    int64
	Title      string
	PosterPath string
}

/*
Add places a movie on the caller's list.

Description: Persists a snapshot of the catalog data. A duplicate
(owner, movie) pair is rejected with a Conflict — add is explicitly not
idempotent, the client is told the movie is already listed.

Parameters:
  - context: context.Context
  - ownerID: string
  - input: AddInput

Returns:
  - *Entry: Created entity
  - error: apperr.Conflict on duplicate, or storage failures
*/
func (service *Service) Add(context context.Context, ownerID string, input AddInput) (*Entry, error) {
	entry := &Entry{
		ID:         uuidv7.New(),
		UserID:     ownerID,
		Kind:       service.kind,
		MovieID:    input.MovieID,
		Title:      input.Title,
		PosterPath: input.PosterPath,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("library_entry_added",
		slog.String("kind", string(service.kind)),
		slog.String("user_id", ownerID),
		slog.Int64("movie_id", input.MovieID),
	)

	return entry, nil
}

/*
List returns every entry on the caller's list.

Description: Unfiltered, store-native order; callers must not rely on a
particular ordering.

Parameters:
  - context: context.Context
  - ownerID: string

Returns:
  - []*Entry: Hydrated entities (possibly empty)
  - error: Storage failures
*/
func (service *Service) List(context context.Context, ownerID string) ([]*Entry, error) {
	return service.repo.ListByOwner(context, ownerID, service.kind)
}

/*
Remove deletes a movie from the caller's list.

Description: Deletion is immediate and final; a later Add for the same
movie succeeds again. A movie not on the caller's list (including one on
someone else's list) yields a NotFound.

Parameters:
  - context: context.Context
  - ownerID: string
  - movieID: int64

Returns:
  - error: apperr.NotFound if no owned entry matched, or storage failures
*/
func (service *Service) Remove(context context.Context, ownerID string, movieID int64) error {
	deleted, err := service.repo.DeleteByOwnerAndMovie(context, ownerID, service.kind, movieID)
	if err != nil {
		return err
	}

	if !deleted {
		return apperr.NotFound("Movie in " + service.kind.Label())
	}

	service.logger.Info("library_entry_removed",
		slog.String("kind", string(service.kind)),
		slog.String("user_id", ownerID),
		slog.Int64("movie_id", movieID),
	)

	return nil
}
