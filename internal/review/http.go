// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nvhoang/cinelog/internal/platform/request"
	"github.com/nvhoang/cinelog/internal/platform/respond"
	"github.com/nvhoang/cinelog/internal/platform/validate"
)

// Handler implements the HTTP endpoints for reviews.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the review endpoints.
//
// All routes sit behind RequireAuth at the mount point, including the
// per-movie listing; reads of other users' reviews still require a
// signed-in caller.
//
// # Endpoints
//   - GET    /       : List the caller's reviews.
//   - POST   /add    : Create a review (409 on second review).
//   - GET    /{id}   : List all reviews for one movie.
//   - POST   /{id}   : Partially update an owned review.
//   - DELETE /{id}   : Delete an owned review.
//
// The wildcard segment is a movie id on reads and a review id on writes;
// chi requires a single name per segment so both use {id}.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMine)
	router.Post("/add", handler.add)
	router.Get("/{id}", handler.listByMovie)
	router.Post("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Request Payloads

type addRequest struct {
	MovieID int64  `json:"movieId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type updateRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

/*
listMine returns the caller's reviews.

GET /api/v1/reviews

Response:
  - 200: []Review (possibly empty)
  - 401: Authentication required
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListMine(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}

/*
add creates a review for the caller.

POST /api/v1/reviews/add

Request:
  - Body: addRequest (MovieID, Rating, Comment)

Response:
  - 201: Review, enriched with the reviewer's name
  - 400: Missing movieId or rating out of range
  - 409: Caller has already reviewed this movie
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldMovieID, input.MovieID).
		Range(FieldRating, input.Rating, MinRating, MaxRating)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Add(request.Context(), ownerID, AddInput{
		MovieID: input.MovieID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, review)
}

/*
listByMovie returns every review for one movie across all users.

GET /api/v1/reviews/{id}

Response:
  - 200: []Review with reviewer names (possibly empty)
  - 400: Malformed movie id
*/
func (handler *Handler) listByMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.MovieID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListByMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}

/*
update partially updates a review the caller owns.

POST /api/v1/reviews/{id}

Request:
  - Body: updateRequest; omitted fields keep their stored values, an
    explicit empty comment clears it.

Response:
  - 200: Updated Review, enriched with the reviewer's name
  - 400: Rating out of range
  - 404: Review absent or owned by someone else
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewID := requestutil.Param(request, "id")

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Rating != nil {
		validator.Range(FieldRating, *input.Rating, MinRating, MaxRating)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Update(request.Context(), ownerID, reviewID, UpdateInput{
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, review)
}

/*
remove deletes a review the caller owns.

DELETE /api/v1/reviews/{id}

Response:
  - 200: Deletion confirmation message
  - 404: Review absent or owned by someone else
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewID := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), ownerID, reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Review deleted",
	})
}
