// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package library

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nvhoang/cinelog/internal/platform/request"
	"github.com/nvhoang/cinelog/internal/platform/respond"
	"github.com/nvhoang/cinelog/internal/platform/validate"
)

// Handler implements the HTTP endpoints for one list kind.
//
// The same handler type is mounted at /watchlist and /watched, each bound
// to its own [Service] instance.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the list endpoints.
//
// All routes sit behind RequireAuth at the mount point; handlers only
// consume the resolved owner id.
//
// # Endpoints
//   - GET    /          : List the caller's entries.
//   - POST   /add       : Add a movie (409 on duplicate).
//   - DELETE /{movieID} : Remove a movie (404 if not listed).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/add", handler.add)
	router.Delete("/{movieID}", handler.remove)

	return router
}

// # Request Payloads

type addRequest struct {
	MovieID    int64  `json:"movieId"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath"`
}

/*
list returns the caller's entries.

GET /api/v1/watchlist
GET /api/v1/watched

Response:
  - 200: []Entry (possibly empty)
  - 401: Authentication required
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.List(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

/*
add places a movie on the caller's list.

POST /api/v1/watchlist/add
POST /api/v1/watched/add

Request:
  - Body: addRequest (MovieID, Title, PosterPath)

Response:
  - 201: Entry
  - 400: Missing movieId or title
  - 409: Movie already listed
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
		Required(FieldTitle, input.Title)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Add(request.Context(), ownerID, AddInput{
		MovieID:    input.MovieID,
		Title:      input.Title,
		PosterPath: input.PosterPath,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
remove deletes a movie from the caller's list.

DELETE /api/v1/watchlist/{movieID}
DELETE /api/v1/watched/{movieID}

Response:
  - 200: Removal confirmation message
  - 400: Malformed movie id
  - 404: Movie not on the caller's list
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movieID, err := requestutil.MovieID(request, "movieID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), ownerID, movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Movie removed from " + handler.service.kind.Label(),
	})
}
