// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package auth

// # Token Sizing

const (
	// RefreshTokenLength is the number of random bytes in a refresh token.
	RefreshTokenLength = 32

	// MinPasswordLength is the minimum accepted password size at registration.
	MinPasswordLength = 6
)
