// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

/*
Package review implements movie ratings and comments.

A Review associates an owner with an external catalog movie id, a 1–10
rating, and an optional free-text comment. Unlike the library lists, reads
have one deliberately multi-owner path: everyone can read all reviews for a
movie. Writes stay strictly owner-scoped.

# Enrichment

Stored reviews carry only the owner's id. The reviewer's display name is
joined in from the account table at read time, never denormalized into the
review row.
*/
package review

import "time"

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// Review represents one user's rating and comment for one movie.
type Review struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	MovieID int64  `json:"movieId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`

	// ReviewerName is joined from the account table on enriched reads;
	// it is empty on plain owner-scoped listings.
	ReviewerName string `json:"reviewerName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// # Field Identifiers

const (
	FieldMovieID = "movieId"
	FieldRating  = "rating"
	FieldComment = "comment"
)
