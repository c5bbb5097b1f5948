// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package review_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvhoang/cinelog/internal/platform/ctxutil"
	"github.com/nvhoang/cinelog/internal/platform/sec"
	"github.com/nvhoang/cinelog/internal/review"
)

// newTestRouter mounts the handler behind a middleware that plants the
// caller's claims, standing in for the JWT verification chain.
func newTestRouter(service *review.Service, userID string) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := &sec.AuthClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
				UserID:           userID,
			}
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthUser(request.Context(), claims)))
		})
	})
	router.Mount("/reviews", review.NewHandler(service).Routes())
	return router
}

func postReview(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reviews/add", strings.NewReader(body)))
	return recorder
}

/*
TestHandler_Add creates a review and returns the enriched entity.
*/
func TestHandler_Add(t *testing.T) {
	service, _ := newTestService()
	router := newTestRouter(service, "user-1")

	recorder := postReview(t, router, `{"movieId": 550, "rating": 9, "comment": "Great."}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data struct {
			ID           string `json:"id"`
			MovieID      int64  `json:"movieId"`
			Rating       int    `json:"rating"`
			ReviewerName string `json:"reviewerName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, int64(550), envelope.Data.MovieID)
	assert.Equal(t, 9, envelope.Data.Rating)
	assert.Equal(t, "Grace", envelope.Data.ReviewerName)
}

/*
TestHandler_Add_Validation rejects out-of-range ratings and bad movie ids.
*/
func TestHandler_Add_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"rating_too_low", `{"movieId": 550, "rating": 0}`},
		{"rating_too_high", `{"movieId": 550, "rating": 11}`},
		{"missing_movie_id", `{"rating": 5}`},
		{"invalid_json", `{"movieId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService()
			router := newTestRouter(service, "user-1")

			recorder := postReview(t, router, tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

/*
TestHandler_Add_SecondReview maps the uniqueness conflict to a 409.
*/
func TestHandler_Add_SecondReview(t *testing.T) {
	service, _ := newTestService()
	router := newTestRouter(service, "user-1")

	recorder := postReview(t, router, `{"movieId": 550, "rating": 9}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postReview(t, router, `{"movieId": 550, "rating": 4}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

/*
TestHandler_ListByMovie serves all users' reviews for one movie through
the shared wildcard route.
*/
func TestHandler_ListByMovie(t *testing.T) {
	service, _ := newTestService()

	firstUser := newTestRouter(service, "user-1")
	secondUser := newTestRouter(service, "user-2")

	require.Equal(t, http.StatusCreated, postReview(t, firstUser, `{"movieId": 550, "rating": 9}`).Code)
	require.Equal(t, http.StatusCreated, postReview(t, secondUser, `{"movieId": 550, "rating": 5}`).Code)

	recorder := httptest.NewRecorder()
	firstUser.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reviews/550", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []struct {
			ReviewerName string `json:"reviewerName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)

	// A malformed movie id on the read path is a 400, not a lookup miss.
	recorder = httptest.NewRecorder()
	firstUser.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reviews/abc", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_Update applies a partial edit through the wildcard POST route
and refuses edits to another user's review.
*/
func TestHandler_Update(t *testing.T) {
	service, _ := newTestService()
	owner := newTestRouter(service, "user-1")
	intruder := newTestRouter(service, "user-2")

	recorder := postReview(t, owner, `{"movieId": 550, "rating": 9, "comment": "Original"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	recorder = httptest.NewRecorder()
	owner.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reviews/"+created.Data.ID, strings.NewReader(`{"rating": 3}`)))
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated struct {
		Data struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &updated))
	assert.Equal(t, 3, updated.Data.Rating)
	assert.Equal(t, "Original", updated.Data.Comment)

	recorder = httptest.NewRecorder()
	intruder.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reviews/"+created.Data.ID, strings.NewReader(`{"rating": 1}`)))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	owner.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reviews/"+created.Data.ID, strings.NewReader(`{"rating": 42}`)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_Delete removes an owned review via the wildcard DELETE route.
*/
func TestHandler_Delete(t *testing.T) {
	service, _ := newTestService()
	owner := newTestRouter(service, "user-1")

	recorder := postReview(t, owner, `{"movieId": 550, "rating": 9}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	recorder = httptest.NewRecorder()
	owner.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reviews/"+created.Data.ID, nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	owner.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reviews/"+created.Data.ID, nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
