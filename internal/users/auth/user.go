// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

/*
Package auth implements the user identity layer.

It defines the core domain entities (User, refresh sessions) and logic for
registration, credential verification, and access-token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User represents a registered member of the Cinelog platform.
//
// The password hash is explicitly omitted from JSON; the struct as
// serialized IS the public representation, so no separate view type exists.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// # Field Identifiers

// Field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldUser     = "user"
	FieldMessage  = "message"
)
