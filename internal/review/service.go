// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package review

import (
	"context"
	"log/slog"

	"github.com/nvhoang/cinelog/internal/platform/apperr"
	"github.com/nvhoang/cinelog/pkg/pointer"
	"github.com/nvhoang/cinelog/pkg/uuidv7"
)

// Service implements the review use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a [Service] with its repository dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AddInput holds the payload for creating a review.
type AddInput struct {
	MovieID int64
	Rating  int
	Comment string
}

// UpdateInput holds the partial-update payload for a review. A nil field
// means keep the stored value; a pointer to the zero value clears it.
type UpdateInput struct {
	Rating  *int
	Comment *string
}

/*
Add creates a new review for the caller.

Description: The one-review-per-movie rule is enforced by the storage
layer's unique constraint; a second review surfaces as a Conflict rather
than silently replacing the first. The response is re-read from the store
so it carries the reviewer's display name.

Parameters:
  - context: context.Context
  - ownerID: string
  - input: AddInput

Returns:
  - *Review: Created, enriched entity
  - error: apperr.Conflict for a second review of the same movie
*/
func (service *Service) Add(context context.Context, ownerID string, input AddInput) (*Review, error) {
	review := &Review{
		ID:      uuidv7.New(),
		UserID:  ownerID,
		MovieID: input.MovieID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := service.repo.Create(context, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_created",
		slog.String("review_id", review.ID),
		slog.String("user_id", ownerID),
		slog.Int64("movie_id", input.MovieID),
	)

	return service.repo.FindByID(context, review.ID)
}

/*
ListMine returns every review written by the caller.

Parameters:
  - context: context.Context
  - ownerID: string

Returns:
  - []*Review: Hydrated entities (possibly empty)
  - error: Storage failures
*/
func (service *Service) ListMine(context context.Context, ownerID string) ([]*Review, error) {
	return service.repo.ListByOwner(context, ownerID)
}

/*
ListByMovie returns every review for one movie, regardless of owner.

Description: This is the single read path that crosses ownership
boundaries; each entry is enriched with its reviewer's display name.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - []*Review: Hydrated, enriched entities (possibly empty)
  - error: Storage failures
*/
func (service *Service) ListByMovie(context context.Context, movieID int64) ([]*Review, error) {
	return service.repo.ListByMovie(context, movieID)
}

/*
Update applies a partial update to a review the caller owns.

Description: Ownership is checked by the scoped fetch; a review owned by
someone else yields the same NotFound as a missing one. Fields left nil in
the input keep their stored values. MovieID and ownership are immutable.

Parameters:
  - context: context.Context
  - ownerID: string
  - reviewID: string
  - input: UpdateInput

Returns:
  - *Review: Updated, enriched entity
  - error: apperr.NotFound when absent or not owned, or storage failures
*/
func (service *Service) Update(context context.Context, ownerID string, reviewID string, input UpdateInput) (*Review, error) {
	review, err := service.repo.FindByIDForOwner(context, ownerID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = pointer.Fallback(input.Rating, review.Rating)
	review.Comment = pointer.Fallback(input.Comment, review.Comment)

	if err := service.repo.Update(context, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_updated",
		slog.String("review_id", review.ID),
		slog.String("user_id", ownerID),
	)

	return service.repo.FindByID(context, review.ID)
}

/*
Delete removes a review the caller owns.

Parameters:
  - context: context.Context
  - ownerID: string
  - reviewID: string

Returns:
  - error: apperr.NotFound when absent or not owned, or storage failures
*/
func (service *Service) Delete(context context.Context, ownerID string, reviewID string) error {
	deleted, err := service.repo.DeleteByOwnerAndID(context, ownerID, reviewID)
	if err != nil {
		return err
	}

	if !deleted {
		return apperr.NotFound("Review")
	}

	service.logger.Info("review_deleted",
		slog.String("review_id", reviewID),
		slog.String("user_id", ownerID),
	)

	return nil
}
